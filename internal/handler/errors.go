package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/rules"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/service"
)

// httpError maps service and rules outcomes to HTTP status codes. Every
// denial reason is a terminal, first-class outcome with a precise message.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrHackathonNotFound),
		errors.Is(err, service.ErrRegistrationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, rules.ErrDuplicateRegistration),
		errors.Is(err, rules.ErrHackathonNotRegistrable),
		errors.Is(err, rules.ErrAlreadyCancelled),
		errors.Is(err, rules.ErrAlreadyCheckedIn),
		errors.Is(err, rules.ErrAlreadySubmitted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, rules.ErrTeamDataMissing),
		errors.Is(err, rules.ErrTeamSizeOutOfBounds),
		errors.Is(err, rules.ErrConsentRequired),
		errors.Is(err, rules.ErrRegistrationCancelled),
		errors.Is(err, rules.ErrHackathonAlreadyStarted),
		errors.Is(err, rules.ErrPastCancellationDeadline),
		errors.Is(err, rules.ErrHackathonNotStarted),
		errors.Is(err, rules.ErrNotPending),
		errors.Is(err, rules.ErrInvalidStatus),
		errors.Is(err, rules.ErrCancelViaTransition),
		errors.Is(err, service.ErrHackathonTerminal),
		errors.Is(err, service.ErrHackathonNotDraft),
		isValidationError(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		rules.ErrTitleRequired,
		rules.ErrDateOrder,
		rules.ErrDeadlineTooLate,
		rules.ErrTeamSizeBounds,
		rules.ErrMaxParticipants,
		rules.ErrJudgingWeights,
		rules.ErrJudgingCriterion,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
