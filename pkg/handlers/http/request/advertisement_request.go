package request

import (
	"fmt"
	"time"
)

type CreateAdvertisementRequest struct {
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	TargetURL string    `json:"target_url"`
	Placement string    `json:"placement"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at,omitempty"`
}

func (r *CreateAdvertisementRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	if r.ImageURL == "" {
		return fmt.Errorf("image_url is required")
	}
	if r.Placement == "" {
		return fmt.Errorf("placement is required")
	}
	if !r.EndsAt.IsZero() && !r.StartsAt.IsZero() && r.EndsAt.Before(r.StartsAt) {
		return fmt.Errorf("ends_at must not be before starts_at")
	}
	return nil
}

type UpdateAdvertisementRequest struct {
	Title     *string    `json:"title,omitempty"`
	ImageURL  *string    `json:"image_url,omitempty"`
	TargetURL *string    `json:"target_url,omitempty"`
	Placement *string    `json:"placement,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
}
