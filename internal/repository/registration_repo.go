package repository

import (
	"context"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error
	FindByID(ctx context.Context, id uint) (*models.Registration, error)
	FindByHackathonID(ctx context.Context, hackathonID uint, status *models.RegistrationStatus) ([]models.Registration, error)
	FindActiveByParticipant(ctx context.Context, tx *gorm.DB, hackathonID uint, participantID string) (*models.Registration, error)
	CountNonCancelled(ctx context.Context, tx *gorm.DB, hackathonID uint) (int64, error)
	Save(ctx context.Context, tx *gorm.DB, reg *models.Registration) error
	GetDB() *gorm.DB
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *registrationRepository) Create(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return tx.WithContext(ctx).Create(reg).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) FindByHackathonID(ctx context.Context, hackathonID uint, status *models.RegistrationStatus) ([]models.Registration, error) {
	var regs []models.Registration
	q := r.db.WithContext(ctx).Where("hackathon_id = ?", hackathonID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("id ASC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// FindActiveByParticipant returns the participant's non-cancelled
// registration for a hackathon, if any.
func (r *registrationRepository) FindActiveByParticipant(ctx context.Context, tx *gorm.DB, hackathonID uint, participantID string) (*models.Registration, error) {
	var reg models.Registration
	err := tx.WithContext(ctx).
		Where("hackathon_id = ? AND participant_id = ? AND status <> ?", hackathonID, participantID, models.StatusCancelled).
		First(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) CountNonCancelled(ctx context.Context, tx *gorm.DB, hackathonID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Registration{}).
		Where("hackathon_id = ? AND status <> ?", hackathonID, models.StatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *registrationRepository) Save(ctx context.Context, tx *gorm.DB, reg *models.Registration) error {
	return tx.WithContext(ctx).Save(reg).Error
}
