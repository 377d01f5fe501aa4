package repository

import (
	"context"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"gorm.io/gorm"
)

type HackathonRepository interface {
	Create(ctx context.Context, h *models.Hackathon) error
	FindByID(ctx context.Context, id uint) (*models.Hackathon, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Hackathon, error)
	FindAll(ctx context.Context, status *models.HackathonStatus) ([]models.Hackathon, error)
	Save(ctx context.Context, h *models.Hackathon) error
	Delete(ctx context.Context, id uint) error
	SetRegistrationCount(ctx context.Context, tx *gorm.DB, id uint, count int) error
}

type hackathonRepository struct {
	db *gorm.DB
}

func NewHackathonRepository(db *gorm.DB) HackathonRepository {
	return &hackathonRepository{db: db}
}

func (r *hackathonRepository) Create(ctx context.Context, h *models.Hackathon) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *hackathonRepository) FindByID(ctx context.Context, id uint) (*models.Hackathon, error) {
	var h models.Hackathon
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// FindByIDForUpdate acquires a row-level lock on the hackathon within the
// given transaction, serializing concurrent registration attempts.
func (r *hackathonRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Hackathon, error) {
	var h models.Hackathon
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *hackathonRepository) FindAll(ctx context.Context, status *models.HackathonStatus) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("start_date ASC, id ASC").Find(&hackathons).Error; err != nil {
		return nil, err
	}
	return hackathons, nil
}

func (r *hackathonRepository) Save(ctx context.Context, h *models.Hackathon) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *hackathonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Hackathon{}, id).Error
}

func (r *hackathonRepository) SetRegistrationCount(ctx context.Context, tx *gorm.DB, id uint, count int) error {
	return tx.WithContext(ctx).
		Model(&models.Hackathon{}).
		Where("id = ?", id).
		Update("registration_count", count).Error
}
