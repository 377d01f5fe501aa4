package models

import "time"

type RegistrationStatus string

const (
	StatusPending    RegistrationStatus = "pending"
	StatusConfirmed  RegistrationStatus = "confirmed"
	StatusWaitlisted RegistrationStatus = "waitlisted"
	StatusRejected   RegistrationStatus = "rejected"
	StatusCancelled  RegistrationStatus = "cancelled"
)

type ParticipationType string

const (
	ParticipationSolo ParticipationType = "solo"
	ParticipationTeam ParticipationType = "team"
)

type TeamMember struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ProjectDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RepoURL     string `json:"repo_url"`
	DemoURL     string `json:"demo_url"`
}

type Registration struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	Code                 string             `gorm:"uniqueIndex;not null" json:"code"`
	HackathonID          uint               `gorm:"not null" json:"hackathon_id"`
	ParticipantID        string             `gorm:"not null" json:"participant_id"`
	ParticipationType    ParticipationType  `gorm:"type:varchar(10);not null;default:'solo'" json:"participation_type"`
	TeamName             string             `json:"team_name,omitempty"`
	TeamMembers          []TeamMember       `gorm:"serializer:json" json:"team_members,omitempty"`
	Skills               []string           `gorm:"serializer:json" json:"skills,omitempty"`
	Organization         string             `json:"organization,omitempty"`
	Status               RegistrationStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CheckedIn            bool               `gorm:"not null;default:false" json:"checked_in"`
	CheckInTime          *time.Time         `json:"check_in_time,omitempty"`
	ProjectSubmitted     bool               `gorm:"not null;default:false" json:"project_submitted"`
	ProjectDetails       *ProjectDetails    `gorm:"serializer:json" json:"project_details,omitempty"`
	AgreeToTerms         bool               `gorm:"not null;default:false" json:"agree_to_terms"`
	AgreeToCodeOfConduct bool               `gorm:"not null;default:false" json:"agree_to_code_of_conduct"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`

	Hackathon *Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
}

// TeamSize is the effective head count: the registrant plus listed members
// for team entries, one for solo.
func (r *Registration) TeamSize() int {
	if r.ParticipationType == ParticipationTeam {
		return len(r.TeamMembers) + 1
	}
	return 1
}
