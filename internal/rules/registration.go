package rules

import (
	"errors"
	"time"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

// CancellationNotice is how long before the hackathon start a participant
// may still cancel.
const CancellationNotice = 24 * time.Hour

// Denial reasons. Each validator returns exactly one of these so the caller
// can map it to a precise user-facing message.
var (
	ErrHackathonNotRegistrable  = errors.New("hackathon is not open for registration")
	ErrDuplicateRegistration    = errors.New("participant already has an active registration for this hackathon")
	ErrTeamDataMissing          = errors.New("team registrations require a team name and at least one team member")
	ErrTeamSizeOutOfBounds      = errors.New("team size is outside the allowed bounds")
	ErrConsentRequired          = errors.New("terms and code of conduct must be accepted")
	ErrRegistrationCancelled    = errors.New("registration is cancelled")
	ErrHackathonAlreadyStarted  = errors.New("hackathon has already started")
	ErrAlreadyCancelled         = errors.New("registration is already cancelled")
	ErrPastCancellationDeadline = errors.New("cancellation deadline has passed")
	ErrAlreadyCheckedIn         = errors.New("registration is already checked in")
	ErrHackathonNotStarted      = errors.New("hackathon has not started yet")
	ErrAlreadySubmitted         = errors.New("project has already been submitted")
)

// ValidateNewRegistration decides whether a draft registration may be
// created against the given hackathon snapshot. The duplicate check is
// enforced separately by the store's unique index; callers surface that
// condition as ErrDuplicateRegistration.
func ValidateNewRegistration(h *models.Hackathon, draft *models.Registration, now time.Time) error {
	if !CanRegister(h, now) {
		return ErrHackathonNotRegistrable
	}
	if draft.ParticipationType == models.ParticipationTeam {
		if draft.TeamName == "" || len(draft.TeamMembers) == 0 {
			return ErrTeamDataMissing
		}
	}
	if size := draft.TeamSize(); size < h.TeamSizeMin || size > h.TeamSizeMax {
		return ErrTeamSizeOutOfBounds
	}
	if !draft.AgreeToTerms || !draft.AgreeToCodeOfConduct {
		return ErrConsentRequired
	}
	return nil
}

// ValidateUpdate gates edits to an existing registration: not after
// cancellation, not once the hackathon is underway.
func ValidateUpdate(reg *models.Registration, h *models.Hackathon, now time.Time) error {
	if reg.Status == models.StatusCancelled {
		return ErrRegistrationCancelled
	}
	if !now.Before(h.StartDate) {
		return ErrHackathonAlreadyStarted
	}
	return nil
}

// ValidateCancellation allows cancelling until CancellationNotice before the
// hackathon start.
func ValidateCancellation(reg *models.Registration, h *models.Hackathon, now time.Time) error {
	if reg.Status == models.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !now.Before(h.StartDate.Add(-CancellationNotice)) {
		return ErrPastCancellationDeadline
	}
	return nil
}

// ValidateCheckIn allows a single check-in at or after the hackathon start.
func ValidateCheckIn(reg *models.Registration, h *models.Hackathon, now time.Time) error {
	if reg.Status == models.StatusCancelled {
		return ErrRegistrationCancelled
	}
	if reg.CheckedIn {
		return ErrAlreadyCheckedIn
	}
	if now.Before(h.StartDate) {
		return ErrHackathonNotStarted
	}
	return nil
}

// ValidateProjectSubmission allows a single project submission at or after
// the hackathon start.
func ValidateProjectSubmission(reg *models.Registration, h *models.Hackathon, now time.Time) error {
	if reg.Status == models.StatusCancelled {
		return ErrRegistrationCancelled
	}
	if reg.ProjectSubmitted {
		return ErrAlreadySubmitted
	}
	if now.Before(h.StartDate) {
		return ErrHackathonNotStarted
	}
	return nil
}
