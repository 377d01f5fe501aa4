package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/notification"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/repository"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/rules"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/cache"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/rabbitmq"
)

var ErrRegistrationNotFound = errors.New("registration not found")

// RegisterInput is the participant-supplied part of a new registration.
type RegisterInput struct {
	ParticipationType    models.ParticipationType
	TeamName             string
	TeamMembers          []models.TeamMember
	Skills               []string
	Organization         string
	AgreeToTerms         bool
	AgreeToCodeOfConduct bool
}

// UpdateRegistrationInput carries partial team-data updates.
type UpdateRegistrationInput struct {
	TeamName     *string
	TeamMembers  []models.TeamMember
	Skills       []string
	Organization *string
}

type RegistrationService interface {
	Register(ctx context.Context, hackathonID uint, actor Actor, in RegisterInput) (*models.Registration, error)
	Get(ctx context.Context, id uint, actor Actor) (*models.Registration, error)
	ListByHackathon(ctx context.Context, hackathonID uint, actor Actor, status *models.RegistrationStatus) ([]models.Registration, error)
	Update(ctx context.Context, id uint, actor Actor, in UpdateRegistrationInput) (*models.Registration, error)
	Cancel(ctx context.Context, id uint, actor Actor) (*models.Registration, error)
	CheckIn(ctx context.Context, id uint, actor Actor) (*models.Registration, error)
	SubmitProject(ctx context.Context, id uint, actor Actor, details models.ProjectDetails) (*models.Registration, error)
	SetStatus(ctx context.Context, id uint, actor Actor, status models.RegistrationStatus) (*models.Registration, error)
	Stats(ctx context.Context, hackathonID uint) (*rules.Stats, error)
}

type registrationService struct {
	regRepo     repository.RegistrationRepository
	hackRepo    repository.HackathonRepository
	publisher   *rabbitmq.Publisher
	statsCache  *cache.Client
	notifier    *notification.TelegramNotifier
	autoConfirm bool
	now         func() time.Time
}

func NewRegistrationService(
	regRepo repository.RegistrationRepository,
	hackRepo repository.HackathonRepository,
	publisher *rabbitmq.Publisher,
	statsCache *cache.Client,
	notifier *notification.TelegramNotifier,
	autoConfirm bool,
) RegistrationService {
	return &registrationService{
		regRepo:     regRepo,
		hackRepo:    hackRepo,
		publisher:   publisher,
		statsCache:  statsCache,
		notifier:    notifier,
		autoConfirm: autoConfirm,
		now:         time.Now,
	}
}

func (s *registrationService) Register(ctx context.Context, hackathonID uint, actor Actor, in RegisterInput) (*models.Registration, error) {
	var result *models.Registration
	var hackathon *models.Hackathon

	err := s.regRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the hackathon row to serialize concurrent registrations
		h, err := s.hackRepo.FindByIDForUpdate(ctx, tx, hackathonID)
		if err != nil {
			return ErrHackathonNotFound
		}
		hackathon = h

		draft := &models.Registration{
			Code:                 uuid.New().String(),
			HackathonID:          hackathonID,
			ParticipantID:        actor.ID,
			ParticipationType:    in.ParticipationType,
			TeamName:             in.TeamName,
			TeamMembers:          in.TeamMembers,
			Skills:               in.Skills,
			Organization:         in.Organization,
			AgreeToTerms:         in.AgreeToTerms,
			AgreeToCodeOfConduct: in.AgreeToCodeOfConduct,
		}
		if draft.ParticipationType == "" {
			draft.ParticipationType = models.ParticipationSolo
		}

		if err := rules.ValidateNewRegistration(h, draft, s.now()); err != nil {
			return err
		}

		// The partial unique index catches the concurrent case; this check
		// gives the precise error for the common one.
		_, err = s.regRepo.FindActiveByParticipant(ctx, tx, hackathonID, actor.ID)
		if err == nil {
			return rules.ErrDuplicateRegistration
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		draft.Status = rules.InitialStatus(s.autoConfirm)
		if err := s.regRepo.Create(ctx, tx, draft); err != nil {
			return err
		}

		if err := s.recount(ctx, tx, h); err != nil {
			return err
		}

		result = draft
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(hackathonID)
	if s.publisher != nil {
		_ = s.publisher.Publish("registration.created", result)
	}
	if s.notifier != nil {
		s.notifier.NotifyRegistrationCreated(hackathon, result)
	}

	return result, nil
}

func (s *registrationService) Get(ctx context.Context, id uint, actor Actor) (*models.Registration, error) {
	reg, err := s.regRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	if !s.canView(ctx, actor, reg) {
		return nil, ErrForbidden
	}
	return reg, nil
}

func (s *registrationService) ListByHackathon(ctx context.Context, hackathonID uint, actor Actor, status *models.RegistrationStatus) ([]models.Registration, error) {
	h, err := s.hackRepo.FindByID(ctx, hackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, err
	}
	if !canManageHackathon(actor, h) {
		return nil, ErrForbidden
	}
	return s.regRepo.FindByHackathonID(ctx, hackathonID, status)
}

func (s *registrationService) Update(ctx context.Context, id uint, actor Actor, in UpdateRegistrationInput) (*models.Registration, error) {
	reg, h, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != RoleAdmin && reg.ParticipantID != actor.ID {
		return nil, ErrForbidden
	}

	if err := rules.ValidateUpdate(reg, h, s.now()); err != nil {
		return nil, err
	}

	if in.TeamName != nil {
		reg.TeamName = *in.TeamName
	}
	if in.TeamMembers != nil {
		reg.TeamMembers = in.TeamMembers
	}
	if in.Skills != nil {
		reg.Skills = in.Skills
	}
	if in.Organization != nil {
		reg.Organization = *in.Organization
	}

	// Re-check team invariants against the (possibly changed) team data
	if reg.ParticipationType == models.ParticipationTeam && (reg.TeamName == "" || len(reg.TeamMembers) == 0) {
		return nil, rules.ErrTeamDataMissing
	}
	if size := reg.TeamSize(); size < h.TeamSizeMin || size > h.TeamSizeMax {
		return nil, rules.ErrTeamSizeOutOfBounds
	}

	if err := s.regRepo.Save(ctx, s.regRepo.GetDB(), reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	s.afterWrite(reg.HackathonID)
	return reg, nil
}

func (s *registrationService) Cancel(ctx context.Context, id uint, actor Actor) (*models.Registration, error) {
	var result *models.Registration
	var hackathon *models.Hackathon

	err := s.regRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reg, err := s.regRepo.FindByID(ctx, id)
		if err != nil {
			return ErrRegistrationNotFound
		}
		if actor.Role != RoleAdmin && reg.ParticipantID != actor.ID {
			return ErrForbidden
		}

		h, err := s.hackRepo.FindByIDForUpdate(ctx, tx, reg.HackathonID)
		if err != nil {
			return ErrHackathonNotFound
		}
		hackathon = h

		transition, err := rules.Cancel(*reg, h, s.now())
		if err != nil {
			return err
		}

		result = &transition.Registration
		if err := s.regRepo.Save(ctx, tx, result); err != nil {
			return err
		}

		if transition.Recount {
			if err := s.recount(ctx, tx, h); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(result.HackathonID)
	if s.publisher != nil {
		_ = s.publisher.Publish("registration.cancelled", result)
	}
	if s.notifier != nil {
		s.notifier.NotifyRegistrationCancelled(hackathon, result)
	}

	return result, nil
}

func (s *registrationService) CheckIn(ctx context.Context, id uint, actor Actor) (*models.Registration, error) {
	reg, h, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg.ParticipantID != actor.ID && !canManageHackathon(actor, h) {
		return nil, ErrForbidden
	}

	transition, err := rules.CheckIn(*reg, h, s.now())
	if err != nil {
		return nil, err
	}

	result := &transition.Registration
	if err := s.regRepo.Save(ctx, s.regRepo.GetDB(), result); err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	s.afterWrite(result.HackathonID)
	if s.publisher != nil {
		_ = s.publisher.Publish("registration.checked_in", result)
	}

	return result, nil
}

func (s *registrationService) SubmitProject(ctx context.Context, id uint, actor Actor, details models.ProjectDetails) (*models.Registration, error) {
	reg, h, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != RoleAdmin && reg.ParticipantID != actor.ID {
		return nil, ErrForbidden
	}

	transition, err := rules.SubmitProject(*reg, h, details, s.now())
	if err != nil {
		return nil, err
	}

	result := &transition.Registration
	if err := s.regRepo.Save(ctx, s.regRepo.GetDB(), result); err != nil {
		return nil, fmt.Errorf("submit project: %w", err)
	}

	s.afterWrite(result.HackathonID)
	if s.publisher != nil {
		_ = s.publisher.Publish("registration.project_submitted", result)
	}

	return result, nil
}

func (s *registrationService) SetStatus(ctx context.Context, id uint, actor Actor, status models.RegistrationStatus) (*models.Registration, error) {
	reg, h, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageHackathon(actor, h) {
		return nil, ErrForbidden
	}

	transition, err := rules.SetStatus(*reg, status)
	if err != nil {
		return nil, err
	}

	result := &transition.Registration
	if err := s.regRepo.Save(ctx, s.regRepo.GetDB(), result); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.afterWrite(result.HackathonID)
	return result, nil
}

func (s *registrationService) Stats(ctx context.Context, hackathonID uint) (*rules.Stats, error) {
	if _, err := s.hackRepo.FindByID(ctx, hackathonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, err
	}

	key := statsKey(hackathonID)
	if s.statsCache != nil {
		var cached rules.Stats
		if ok, err := s.statsCache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	regs, err := s.regRepo.FindByHackathonID(ctx, hackathonID, nil)
	if err != nil {
		return nil, err
	}

	stats := rules.Aggregate(regs)
	if s.statsCache != nil {
		_ = s.statsCache.SetJSON(ctx, key, &stats)
	}

	return &stats, nil
}

func (s *registrationService) load(ctx context.Context, id uint) (*models.Registration, *models.Hackathon, error) {
	reg, err := s.regRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRegistrationNotFound
		}
		return nil, nil, err
	}
	h, err := s.hackRepo.FindByID(ctx, reg.HackathonID)
	if err != nil {
		return nil, nil, ErrHackathonNotFound
	}
	return reg, h, nil
}

// recount recomputes the materialized registration count from the
// non-cancelled set, inside the triggering transaction.
func (s *registrationService) recount(ctx context.Context, tx *gorm.DB, h *models.Hackathon) error {
	count, err := s.regRepo.CountNonCancelled(ctx, tx, h.ID)
	if err != nil {
		return err
	}
	h.RegistrationCount = int(count)
	return s.hackRepo.SetRegistrationCount(ctx, tx, h.ID, int(count))
}

func (s *registrationService) afterWrite(hackathonID uint) {
	if s.statsCache != nil {
		_ = s.statsCache.Delete(context.Background(), statsKey(hackathonID))
	}
}

func (s *registrationService) canView(ctx context.Context, actor Actor, reg *models.Registration) bool {
	if actor.Role == RoleAdmin || reg.ParticipantID == actor.ID {
		return true
	}
	h, err := s.hackRepo.FindByID(ctx, reg.HackathonID)
	return err == nil && canManageHackathon(actor, h)
}

func statsKey(hackathonID uint) string {
	return fmt.Sprintf("hackathon:%d:stats", hackathonID)
}
