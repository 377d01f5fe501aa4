package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/repository"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/rules"
	"github.com/Ramakrishnajakkula/SPC-backend/pkg/rabbitmq"
)

const (
	RoleParticipant = "participant"
	RoleOrganizer   = "organizer"
	RoleAdmin       = "admin"
)

// Actor is the authenticated caller, as supplied by the gateway.
type Actor struct {
	ID   string
	Role string
}

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrForbidden         = errors.New("not allowed to perform this action")
	ErrHackathonTerminal = errors.New("hackathon is completed or cancelled")
	ErrHackathonNotDraft = errors.New("only draft hackathons can be published")
)

// UpdateHackathonInput carries partial updates; nil fields are left as is.
type UpdateHackathonInput struct {
	Title                *string
	Description          *string
	Location             *string
	StartDate            *time.Time
	EndDate              *time.Time
	RegistrationDeadline *time.Time
	TeamSizeMin          *int
	TeamSizeMax          *int
	MaxParticipants      *int
	JudgingCriteria      []models.JudgingCriterion
}

type HackathonService interface {
	Create(ctx context.Context, actor Actor, h *models.Hackathon) error
	Get(ctx context.Context, id uint) (*models.Hackathon, error)
	List(ctx context.Context, status *models.HackathonStatus) ([]models.Hackathon, error)
	Update(ctx context.Context, id uint, actor Actor, in UpdateHackathonInput) (*models.Hackathon, error)
	Publish(ctx context.Context, id uint, actor Actor) (*models.Hackathon, error)
	Delete(ctx context.Context, id uint, actor Actor) error
}

type hackathonService struct {
	repo      repository.HackathonRepository
	publisher *rabbitmq.Publisher
	now       func() time.Time
}

func NewHackathonService(repo repository.HackathonRepository, publisher *rabbitmq.Publisher) HackathonService {
	return &hackathonService{repo: repo, publisher: publisher, now: time.Now}
}

func (s *hackathonService) Create(ctx context.Context, actor Actor, h *models.Hackathon) error {
	if actor.Role != RoleOrganizer && actor.Role != RoleAdmin {
		return ErrForbidden
	}

	if err := rules.ValidateHackathon(h); err != nil {
		return err
	}

	h.Status = models.HackathonDraft
	h.RegistrationCount = 0
	h.OrganizerID = actor.ID

	if err := s.repo.Create(ctx, h); err != nil {
		return fmt.Errorf("create hackathon: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("hackathon.created", h)
	}

	return nil
}

func (s *hackathonService) Get(ctx context.Context, id uint) (*models.Hackathon, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHackathonNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *hackathonService) List(ctx context.Context, status *models.HackathonStatus) ([]models.Hackathon, error) {
	return s.repo.FindAll(ctx, status)
}

func (s *hackathonService) Update(ctx context.Context, id uint, actor Actor, in UpdateHackathonInput) (*models.Hackathon, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageHackathon(actor, h) {
		return nil, ErrForbidden
	}
	if h.Terminal() {
		return nil, ErrHackathonTerminal
	}

	if in.Title != nil {
		h.Title = *in.Title
	}
	if in.Description != nil {
		h.Description = *in.Description
	}
	if in.Location != nil {
		h.Location = *in.Location
	}
	if in.StartDate != nil {
		h.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		h.EndDate = *in.EndDate
	}
	if in.RegistrationDeadline != nil {
		h.RegistrationDeadline = *in.RegistrationDeadline
	}
	if in.TeamSizeMin != nil {
		h.TeamSizeMin = *in.TeamSizeMin
	}
	if in.TeamSizeMax != nil {
		h.TeamSizeMax = *in.TeamSizeMax
	}
	if in.MaxParticipants != nil {
		h.MaxParticipants = *in.MaxParticipants
	}
	if in.JudgingCriteria != nil {
		h.JudgingCriteria = in.JudgingCriteria
	}

	if err := rules.ValidateHackathon(h); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, h); err != nil {
		return nil, fmt.Errorf("update hackathon: %w", err)
	}

	return h, nil
}

func (s *hackathonService) Publish(ctx context.Context, id uint, actor Actor) (*models.Hackathon, error) {
	h, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManageHackathon(actor, h) {
		return nil, ErrForbidden
	}
	if h.Status != models.HackathonDraft {
		return nil, ErrHackathonNotDraft
	}

	if err := rules.ValidateHackathon(h); err != nil {
		return nil, err
	}

	h.Status = models.HackathonPublished
	if err := s.repo.Save(ctx, h); err != nil {
		return nil, fmt.Errorf("publish hackathon: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("hackathon.published", h)
	}

	return h, nil
}

// Delete removes a draft outright; anything else non-terminal is cancelled
// instead, preserving registrations for audit.
func (s *hackathonService) Delete(ctx context.Context, id uint, actor Actor) error {
	h, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !canManageHackathon(actor, h) {
		return ErrForbidden
	}

	if h.Status == models.HackathonDraft {
		return s.repo.Delete(ctx, id)
	}
	if h.Terminal() {
		return ErrHackathonTerminal
	}

	h.Status = models.HackathonCancelled
	if err := s.repo.Save(ctx, h); err != nil {
		return fmt.Errorf("cancel hackathon: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("hackathon.cancelled", h)
	}

	return nil
}

func canManageHackathon(actor Actor, h *models.Hackathon) bool {
	return actor.Role == RoleAdmin || h.OrganizerID == actor.ID
}
