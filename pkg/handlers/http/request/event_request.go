package request

import (
	"fmt"
	"time"
)

type CreateEventRequest struct {
	Name           string    `json:"name"`
	EventType      string    `json:"event_type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Location       string    `json:"location"`
	VenueName      string    `json:"venue_name"`
	Description    string    `json:"description"`
	MaxCompetitors int       `json:"max_competitors"`
	EarlyBirdPrice float64   `json:"early_bird_price"`
	RegularPrice   float64   `json:"regular_price"`
}

func (r *CreateEventRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.EventType == "" {
		return fmt.Errorf("event_type is required")
	}
	if r.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}

type UpdateEventRequest struct {
	Name           *string    `json:"name,omitempty"`
	Status         *string    `json:"status,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Location       *string    `json:"location,omitempty"`
	VenueName      *string    `json:"venue_name,omitempty"`
	Description    *string    `json:"description,omitempty"`
	MaxCompetitors *int       `json:"max_competitors,omitempty"`
	EarlyBirdPrice *float64   `json:"early_bird_price,omitempty"`
	RegularPrice   *float64   `json:"regular_price,omitempty"`
}
