// Package rules holds the pure domain rules for hackathons and
// registrations. Every function here is a computation over snapshots and an
// explicit current time; nothing in this package touches the database, the
// clock, or the network, so callers (and tests) fully control the inputs.
package rules

import (
	"errors"
	"time"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrDateOrder        = errors.New("end_date must be after start_date")
	ErrDeadlineTooLate  = errors.New("registration_deadline must be before start_date")
	ErrTeamSizeBounds   = errors.New("team_size_min must be positive and not exceed team_size_max")
	ErrMaxParticipants  = errors.New("max_participants must be positive")
	ErrJudgingWeights   = errors.New("judging criteria weights must sum to 100")
	ErrJudgingCriterion = errors.New("judging criteria require a name and a weight between 0 and 100")
)

// ValidateHackathon checks a proposed hackathon definition and returns all
// violated invariants joined into a single error, or nil if the definition is
// valid. It must run before create and before any update touching the
// checked fields.
func ValidateHackathon(h *models.Hackathon) error {
	var violations []error

	if h.Title == "" {
		violations = append(violations, ErrTitleRequired)
	}
	if !h.EndDate.After(h.StartDate) {
		violations = append(violations, ErrDateOrder)
	}
	if !h.RegistrationDeadline.Before(h.StartDate) {
		violations = append(violations, ErrDeadlineTooLate)
	}
	if h.TeamSizeMin < 1 || h.TeamSizeMax < h.TeamSizeMin {
		violations = append(violations, ErrTeamSizeBounds)
	}
	if h.MaxParticipants < 1 {
		violations = append(violations, ErrMaxParticipants)
	}
	if len(h.JudgingCriteria) > 0 {
		sum := 0
		for _, c := range h.JudgingCriteria {
			if c.Name == "" || c.Weight < 0 || c.Weight > 100 {
				violations = append(violations, ErrJudgingCriterion)
				break
			}
			sum += c.Weight
		}
		if sum != 100 {
			violations = append(violations, ErrJudgingWeights)
		}
	}

	return errors.Join(violations...)
}

// TemporalStatus derives the time-based state of a hackathon from its dates.
func TemporalStatus(h *models.Hackathon, now time.Time) models.TemporalStatus {
	switch {
	case now.Before(h.StartDate):
		return models.TemporalUpcoming
	case now.After(h.EndDate):
		return models.TemporalCompleted
	default:
		return models.TemporalOngoing
	}
}

// RegistrationStatus derives whether the registration window is open, full
// or closed. Closed takes precedence over full.
func RegistrationStatus(h *models.Hackathon, now time.Time) models.RegistrationWindow {
	switch {
	case now.After(h.RegistrationDeadline):
		return models.RegistrationClosed
	case h.RegistrationCount >= h.MaxParticipants:
		return models.RegistrationFull
	default:
		return models.RegistrationOpen
	}
}

// CanRegister reports whether a new registration may be created right now:
// the hackathon must be published, within its deadline, and not at capacity.
func CanRegister(h *models.Hackathon, now time.Time) bool {
	return h.Status == models.HackathonPublished &&
		RegistrationStatus(h, now) == models.RegistrationOpen
}
