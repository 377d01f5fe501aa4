package dto

import (
	"time"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
)

type CreateHackathonRequest struct {
	Title                string                    `json:"title" validate:"required"`
	Description          string                    `json:"description"`
	Location             string                    `json:"location"`
	StartDate            time.Time                 `json:"start_date" validate:"required"`
	EndDate              time.Time                 `json:"end_date" validate:"required,gtfield=StartDate"`
	RegistrationDeadline time.Time                 `json:"registration_deadline" validate:"required,ltfield=StartDate"`
	TeamSizeMin          int                       `json:"team_size_min" validate:"required,gt=0"`
	TeamSizeMax          int                       `json:"team_size_max" validate:"required,gtefield=TeamSizeMin"`
	MaxParticipants      int                       `json:"max_participants" validate:"required,gt=0"`
	JudgingCriteria      []models.JudgingCriterion `json:"judging_criteria"`
}

type UpdateHackathonRequest struct {
	Title                *string                   `json:"title"`
	Description          *string                   `json:"description"`
	Location             *string                   `json:"location"`
	StartDate            *time.Time                `json:"start_date"`
	EndDate              *time.Time                `json:"end_date"`
	RegistrationDeadline *time.Time                `json:"registration_deadline"`
	TeamSizeMin          *int                      `json:"team_size_min"`
	TeamSizeMax          *int                      `json:"team_size_max"`
	MaxParticipants      *int                      `json:"max_participants"`
	JudgingCriteria      []models.JudgingCriterion `json:"judging_criteria"`
}

type CreateRegistrationRequest struct {
	ParticipationType    models.ParticipationType `json:"participation_type"`
	TeamName             string                   `json:"team_name"`
	TeamMembers          []models.TeamMember      `json:"team_members"`
	Skills               []string                 `json:"skills"`
	Organization         string                   `json:"organization"`
	AgreeToTerms         bool                     `json:"agree_to_terms"`
	AgreeToCodeOfConduct bool                     `json:"agree_to_code_of_conduct"`
}

type UpdateRegistrationRequest struct {
	TeamName     *string             `json:"team_name"`
	TeamMembers  []models.TeamMember `json:"team_members"`
	Skills       []string            `json:"skills"`
	Organization *string             `json:"organization"`
}

type SubmitProjectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	RepoURL     string `json:"repo_url"`
	DemoURL     string `json:"demo_url"`
}

type SetStatusRequest struct {
	Status models.RegistrationStatus `json:"status" validate:"required"`
}
