package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	TypeSPL  = "SPL"
	TypeSQ   = "SQ"
	TypeShow = "Show"
)

type Event struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name"`
	EventType      string    `json:"event_type" gorm:"index"`
	Status         string    `json:"status" gorm:"index"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Location       string    `json:"location"`
	VenueName      string    `json:"venue_name"`
	Description    string    `json:"description"`
	MaxCompetitors int       `json:"max_competitors"`
	EarlyBirdPrice float64   `json:"early_bird_price"`
	RegularPrice   float64   `json:"regular_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (e Event) TableName() string {
	return "public.events"
}

// Stats is the aggregation returned by the repository for one event.
type Stats struct {
	EventID            uuid.UUID `json:"event_id"`
	TotalRegistrations int64     `json:"total_registrations"`
	Confirmed          int64     `json:"confirmed"`
	TotalRevenue       float64   `json:"total_revenue"`
}
