package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, models.StatusConfirmed, InitialStatus(true))
	assert.Equal(t, models.StatusPending, InitialStatus(false))
}

func TestConfirm(t *testing.T) {
	tr, err := Confirm(models.Registration{Status: models.StatusPending})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, tr.Registration.Status)
	assert.False(t, tr.Recount)
}

func TestConfirm_NotPending(t *testing.T) {
	_, err := Confirm(models.Registration{Status: models.StatusConfirmed})
	assert.ErrorIs(t, err, ErrNotPending)

	_, err = Confirm(models.Registration{Status: models.StatusCancelled})
	assert.ErrorIs(t, err, ErrRegistrationCancelled)
}

func TestCancel_RequiresRecount(t *testing.T) {
	h := teamHackathon()
	reg := models.Registration{Status: models.StatusConfirmed}

	tr, err := Cancel(reg, h, h.StartDate.Add(-48*time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, tr.Registration.Status)
	assert.True(t, tr.Recount)
}

func TestCancel_Irreversible(t *testing.T) {
	h := teamHackathon()
	reg := models.Registration{Status: models.StatusCancelled}

	_, err := Cancel(reg, h, h.StartDate.Add(-48*time.Hour))

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCheckIn_SetsFlagAndTime(t *testing.T) {
	h := teamHackathon()
	now := h.StartDate.Add(time.Hour)

	tr, err := CheckIn(models.Registration{Status: models.StatusConfirmed}, h, now)

	assert.NoError(t, err)
	assert.True(t, tr.Registration.CheckedIn)
	if assert.NotNil(t, tr.Registration.CheckInTime) {
		assert.Equal(t, now, *tr.Registration.CheckInTime)
	}
	assert.False(t, tr.Recount)
}

func TestCheckIn_Idempotence(t *testing.T) {
	h := teamHackathon()
	now := h.StartDate.Add(time.Hour)

	first, err := CheckIn(models.Registration{Status: models.StatusConfirmed}, h, now)
	assert.NoError(t, err)

	// second attempt is denied and the state is unchanged
	_, err = CheckIn(first.Registration, h, now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.True(t, first.Registration.CheckedIn)
	assert.Equal(t, now, *first.Registration.CheckInTime)
}

func TestSubmitProject(t *testing.T) {
	h := teamHackathon()
	details := models.ProjectDetails{Title: "Pathfinder", RepoURL: "https://example.com/repo"}

	tr, err := SubmitProject(models.Registration{Status: models.StatusConfirmed}, h, details, h.StartDate.Add(2*time.Hour))

	assert.NoError(t, err)
	assert.True(t, tr.Registration.ProjectSubmitted)
	if assert.NotNil(t, tr.Registration.ProjectDetails) {
		assert.Equal(t, "Pathfinder", tr.Registration.ProjectDetails.Title)
	}

	_, err = SubmitProject(tr.Registration, h, details, h.StartDate.Add(3*time.Hour))
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestSetStatus(t *testing.T) {
	tr, err := SetStatus(models.Registration{Status: models.StatusPending}, models.StatusWaitlisted)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusWaitlisted, tr.Registration.Status)
	assert.False(t, tr.Recount)
}

func TestSetStatus_CancelledIsTerminal(t *testing.T) {
	_, err := SetStatus(models.Registration{Status: models.StatusCancelled}, models.StatusConfirmed)
	assert.ErrorIs(t, err, ErrRegistrationCancelled)
}

func TestSetStatus_CancelRejected(t *testing.T) {
	_, err := SetStatus(models.Registration{Status: models.StatusPending}, models.StatusCancelled)
	assert.ErrorIs(t, err, ErrCancelViaTransition)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	_, err := SetStatus(models.Registration{Status: models.StatusPending}, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
