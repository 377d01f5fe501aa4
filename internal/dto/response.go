package dto

import (
	"time"

	"github.com/Ramakrishnajakkula/SPC-backend/internal/models"
	"github.com/Ramakrishnajakkula/SPC-backend/internal/rules"
)

type HackathonResponse struct {
	ID                   uint                      `json:"id"`
	Title                string                    `json:"title"`
	Description          string                    `json:"description,omitempty"`
	Location             string                    `json:"location,omitempty"`
	StartDate            time.Time                 `json:"start_date"`
	EndDate              time.Time                 `json:"end_date"`
	RegistrationDeadline time.Time                 `json:"registration_deadline"`
	TeamSizeMin          int                       `json:"team_size_min"`
	TeamSizeMax          int                       `json:"team_size_max"`
	MaxParticipants      int                       `json:"max_participants"`
	JudgingCriteria      []models.JudgingCriterion `json:"judging_criteria,omitempty"`
	Status               models.HackathonStatus    `json:"status"`
	TemporalStatus       models.TemporalStatus     `json:"temporal_status"`
	RegistrationStatus   models.RegistrationWindow `json:"registration_status"`
	RegistrationCount    int                       `json:"registration_count"`
	OrganizerID          string                    `json:"organizer_id"`
	CreatedAt            time.Time                 `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// ToHackathonResponse renders a hackathon with its derived statuses as of
// the given time.
func ToHackathonResponse(h *models.Hackathon, now time.Time) HackathonResponse {
	return HackathonResponse{
		ID:                   h.ID,
		Title:                h.Title,
		Description:          h.Description,
		Location:             h.Location,
		StartDate:            h.StartDate,
		EndDate:              h.EndDate,
		RegistrationDeadline: h.RegistrationDeadline,
		TeamSizeMin:          h.TeamSizeMin,
		TeamSizeMax:          h.TeamSizeMax,
		MaxParticipants:      h.MaxParticipants,
		JudgingCriteria:      h.JudgingCriteria,
		Status:               h.Status,
		TemporalStatus:       rules.TemporalStatus(h, now),
		RegistrationStatus:   rules.RegistrationStatus(h, now),
		RegistrationCount:    h.RegistrationCount,
		OrganizerID:          h.OrganizerID,
		CreatedAt:            h.CreatedAt,
	}
}

type RegistrationResponse struct {
	ID                uint                      `json:"id"`
	Code              string                    `json:"code"`
	HackathonID       uint                      `json:"hackathon_id"`
	ParticipantID     string                    `json:"participant_id"`
	ParticipationType models.ParticipationType  `json:"participation_type"`
	TeamName          string                    `json:"team_name,omitempty"`
	TeamMembers       []models.TeamMember       `json:"team_members,omitempty"`
	Skills            []string                  `json:"skills,omitempty"`
	Organization      string                    `json:"organization,omitempty"`
	Status            models.RegistrationStatus `json:"status"`
	CheckedIn         bool                      `json:"checked_in"`
	CheckInTime       *time.Time                `json:"check_in_time,omitempty"`
	ProjectSubmitted  bool                      `json:"project_submitted"`
	ProjectDetails    *models.ProjectDetails    `json:"project_details,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
}

func ToRegistrationResponse(r *models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                r.ID,
		Code:              r.Code,
		HackathonID:       r.HackathonID,
		ParticipantID:     r.ParticipantID,
		ParticipationType: r.ParticipationType,
		TeamName:          r.TeamName,
		TeamMembers:       r.TeamMembers,
		Skills:            r.Skills,
		Organization:      r.Organization,
		Status:            r.Status,
		CheckedIn:         r.CheckedIn,
		CheckInTime:       r.CheckInTime,
		ProjectSubmitted:  r.ProjectSubmitted,
		ProjectDetails:    r.ProjectDetails,
		CreatedAt:         r.CreatedAt,
	}
}
