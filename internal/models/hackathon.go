package models

import "time"

type HackathonStatus string

const (
	HackathonDraft     HackathonStatus = "draft"
	HackathonPublished HackathonStatus = "published"
	HackathonOngoing   HackathonStatus = "ongoing"
	HackathonCompleted HackathonStatus = "completed"
	HackathonCancelled HackathonStatus = "cancelled"
)

// TemporalStatus is derived from the event dates, never stored.
type TemporalStatus string

const (
	TemporalUpcoming  TemporalStatus = "upcoming"
	TemporalOngoing   TemporalStatus = "ongoing"
	TemporalCompleted TemporalStatus = "completed"
)

// RegistrationWindow describes whether new registrations are accepted.
type RegistrationWindow string

const (
	RegistrationOpen   RegistrationWindow = "open"
	RegistrationFull   RegistrationWindow = "full"
	RegistrationClosed RegistrationWindow = "closed"
)

type JudgingCriterion struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

type Hackathon struct {
	ID                   uint               `gorm:"primaryKey" json:"id"`
	Title                string             `gorm:"not null" json:"title"`
	Description          string             `json:"description"`
	Location             string             `json:"location"`
	StartDate            time.Time          `gorm:"not null" json:"start_date"`
	EndDate              time.Time          `gorm:"not null" json:"end_date"`
	RegistrationDeadline time.Time          `gorm:"not null" json:"registration_deadline"`
	TeamSizeMin          int                `gorm:"not null" json:"team_size_min"`
	TeamSizeMax          int                `gorm:"not null" json:"team_size_max"`
	MaxParticipants      int                `gorm:"not null" json:"max_participants"`
	JudgingCriteria      []JudgingCriterion `gorm:"serializer:json" json:"judging_criteria"`
	Status               HackathonStatus    `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	RegistrationCount    int                `gorm:"not null;default:0" json:"registration_count"`
	OrganizerID          string             `gorm:"not null" json:"organizer_id"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// Terminal reports whether the stored status can never change again.
func (h *Hackathon) Terminal() bool {
	return h.Status == HackathonCompleted || h.Status == HackathonCancelled
}
