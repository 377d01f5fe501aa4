package rules

import (
	"errors"
	"time"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

var (
	ErrNotPending          = errors.New("registration is not pending")
	ErrInvalidStatus       = errors.New("invalid registration status")
	ErrCancelViaTransition = errors.New("use the cancel transition to cancel a registration")
)

// Transition is the outcome of a lifecycle step: the next registration state
// and whether the hackathon's registration count must be recomputed (true
// whenever the non-cancelled set changes).
type Transition struct {
	Registration models.Registration
	Recount      bool
}

// InitialStatus is the status a freshly validated registration starts in.
// Auto-confirm is the default policy; with it off, registrations wait in
// pending for an explicit confirm.
func InitialStatus(autoConfirm bool) models.RegistrationStatus {
	if autoConfirm {
		return models.StatusConfirmed
	}
	return models.StatusPending
}

// Confirm moves a pending registration to confirmed.
func Confirm(reg models.Registration) (Transition, error) {
	if reg.Status == models.StatusCancelled {
		return Transition{}, ErrRegistrationCancelled
	}
	if reg.Status != models.StatusPending {
		return Transition{}, ErrNotPending
	}
	reg.Status = models.StatusConfirmed
	return Transition{Registration: reg}, nil
}

// Cancel moves any non-terminal registration to cancelled. The transition is
// irreversible and always requires a recount.
func Cancel(reg models.Registration, h *models.Hackathon, now time.Time) (Transition, error) {
	if err := ValidateCancellation(&reg, h, now); err != nil {
		return Transition{}, err
	}
	reg.Status = models.StatusCancelled
	return Transition{Registration: reg, Recount: true}, nil
}

// CheckIn sets the orthogonal checked-in flag, once, recording the time.
func CheckIn(reg models.Registration, h *models.Hackathon, now time.Time) (Transition, error) {
	if err := ValidateCheckIn(&reg, h, now); err != nil {
		return Transition{}, err
	}
	reg.CheckedIn = true
	t := now
	reg.CheckInTime = &t
	return Transition{Registration: reg}, nil
}

// SubmitProject sets the orthogonal project-submitted flag, once, attaching
// the submitted details.
func SubmitProject(reg models.Registration, h *models.Hackathon, details models.ProjectDetails, now time.Time) (Transition, error) {
	if err := ValidateProjectSubmission(&reg, h, now); err != nil {
		return Transition{}, err
	}
	reg.ProjectSubmitted = true
	reg.ProjectDetails = &details
	return Transition{Registration: reg}, nil
}

// SetStatus applies an organizer-driven status change. Cancelled is terminal
// and may only be entered through Cancel, so un-cancelling and cancelling
// are both structurally rejected here.
func SetStatus(reg models.Registration, next models.RegistrationStatus) (Transition, error) {
	if reg.Status == models.StatusCancelled {
		return Transition{}, ErrRegistrationCancelled
	}
	switch next {
	case models.StatusPending, models.StatusConfirmed, models.StatusWaitlisted, models.StatusRejected:
	case models.StatusCancelled:
		return Transition{}, ErrCancelViaTransition
	default:
		return Transition{}, ErrInvalidStatus
	}
	reg.Status = next
	return Transition{Registration: reg}, nil
}
