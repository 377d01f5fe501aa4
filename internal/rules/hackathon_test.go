package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

func validHackathon() *models.Hackathon {
	return &models.Hackathon{
		Title:                "Spring Code Jam",
		StartDate:            time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, 4, 12, 18, 0, 0, 0, time.UTC),
		RegistrationDeadline: time.Date(2026, 4, 8, 23, 59, 0, 0, time.UTC),
		TeamSizeMin:          1,
		TeamSizeMax:          4,
		MaxParticipants:      100,
		Status:               models.HackathonPublished,
	}
}

func TestValidateHackathon_Valid(t *testing.T) {
	assert.NoError(t, ValidateHackathon(validHackathon()))
}

func TestValidateHackathon_DateOrder(t *testing.T) {
	h := validHackathon()
	h.EndDate = h.StartDate.Add(-time.Hour)

	err := ValidateHackathon(h)

	assert.ErrorIs(t, err, ErrDateOrder)
}

func TestValidateHackathon_DeadlineAfterStart(t *testing.T) {
	h := validHackathon()
	h.RegistrationDeadline = h.StartDate.Add(time.Hour)

	err := ValidateHackathon(h)

	assert.ErrorIs(t, err, ErrDeadlineTooLate)
}

func TestValidateHackathon_TeamSizeBounds(t *testing.T) {
	h := validHackathon()
	h.TeamSizeMin = 5
	h.TeamSizeMax = 3

	assert.ErrorIs(t, ValidateHackathon(h), ErrTeamSizeBounds)

	h = validHackathon()
	h.TeamSizeMin = 0

	assert.ErrorIs(t, ValidateHackathon(h), ErrTeamSizeBounds)
}

func TestValidateHackathon_MaxParticipants(t *testing.T) {
	h := validHackathon()
	h.MaxParticipants = 0

	assert.ErrorIs(t, ValidateHackathon(h), ErrMaxParticipants)
}

func TestValidateHackathon_JudgingWeights(t *testing.T) {
	h := validHackathon()
	h.JudgingCriteria = []models.JudgingCriterion{
		{Name: "Innovation", Weight: 40},
		{Name: "Execution", Weight: 30},
		{Name: "Impact", Weight: 30},
	}
	assert.NoError(t, ValidateHackathon(h))

	h.JudgingCriteria = []models.JudgingCriterion{
		{Name: "Innovation", Weight: 40},
		{Name: "Execution", Weight: 30},
		{Name: "Impact", Weight: 20},
	}
	assert.ErrorIs(t, ValidateHackathon(h), ErrJudgingWeights)
}

func TestValidateHackathon_EmptyCriteriaAllowed(t *testing.T) {
	h := validHackathon()
	h.JudgingCriteria = nil

	assert.NoError(t, ValidateHackathon(h))
}

func TestValidateHackathon_CollectsAllViolations(t *testing.T) {
	h := validHackathon()
	h.Title = ""
	h.MaxParticipants = -1
	h.EndDate = h.StartDate

	err := ValidateHackathon(h)

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.ErrorIs(t, err, ErrMaxParticipants)
	assert.ErrorIs(t, err, ErrDateOrder)
}

func TestTemporalStatus(t *testing.T) {
	h := validHackathon()

	assert.Equal(t, models.TemporalUpcoming, TemporalStatus(h, h.StartDate.Add(-time.Hour)))
	assert.Equal(t, models.TemporalOngoing, TemporalStatus(h, h.StartDate))
	assert.Equal(t, models.TemporalOngoing, TemporalStatus(h, h.EndDate))
	assert.Equal(t, models.TemporalCompleted, TemporalStatus(h, h.EndDate.Add(time.Minute)))
}

func TestRegistrationStatus(t *testing.T) {
	h := validHackathon()
	before := h.RegistrationDeadline.Add(-time.Hour)

	assert.Equal(t, models.RegistrationOpen, RegistrationStatus(h, before))

	h.RegistrationCount = h.MaxParticipants
	assert.Equal(t, models.RegistrationFull, RegistrationStatus(h, before))

	// closed wins over full
	assert.Equal(t, models.RegistrationClosed, RegistrationStatus(h, h.RegistrationDeadline.Add(time.Second)))
}

func TestCanRegister(t *testing.T) {
	h := validHackathon()
	now := h.RegistrationDeadline.Add(-time.Hour)

	assert.True(t, CanRegister(h, now))

	h.Status = models.HackathonDraft
	assert.False(t, CanRegister(h, now))

	h.Status = models.HackathonPublished
	h.RegistrationCount = 10
	h.MaxParticipants = 10
	assert.False(t, CanRegister(h, now))

	h.RegistrationCount = 9
	assert.True(t, CanRegister(h, now))

	assert.False(t, CanRegister(h, h.RegistrationDeadline.Add(time.Minute)))
}
