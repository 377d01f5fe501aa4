package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.Total)
	assert.Empty(t, s.ByStatus)
	assert.Empty(t, s.Skills)
}

func TestAggregate(t *testing.T) {
	regs := []models.Registration{
		{
			Status:            models.StatusConfirmed,
			ParticipationType: models.ParticipationSolo,
			CheckedIn:         true,
			ProjectSubmitted:  true,
			Skills:            []string{"go", "react"},
			Organization:      "Acme U",
		},
		{
			Status:            models.StatusConfirmed,
			ParticipationType: models.ParticipationTeam,
			Skills:            []string{"go"},
			Organization:      "Acme U",
		},
		{
			Status:            models.StatusWaitlisted,
			ParticipationType: models.ParticipationSolo,
			Skills:            []string{"python"},
		},
		{
			Status:            models.StatusCancelled,
			ParticipationType: models.ParticipationSolo,
			Organization:      "Globex",
		},
	}

	s := Aggregate(regs)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.ByStatus[models.StatusConfirmed])
	assert.Equal(t, 1, s.ByStatus[models.StatusWaitlisted])
	assert.Equal(t, 1, s.ByStatus[models.StatusCancelled])
	assert.Equal(t, 3, s.ByType[models.ParticipationSolo])
	assert.Equal(t, 1, s.ByType[models.ParticipationTeam])
	assert.Equal(t, 1, s.CheckedIn)
	assert.Equal(t, 1, s.ProjectsSubmitted)
	assert.Equal(t, 2, s.Skills["go"])
	assert.Equal(t, 1, s.Skills["react"])
	assert.Equal(t, 1, s.Skills["python"])
	assert.Equal(t, 2, s.Organizations["Acme U"])
	assert.Equal(t, 1, s.Organizations["Globex"])
}
