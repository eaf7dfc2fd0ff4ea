package advertisement

import (
	"time"

	"github.com/google/uuid"
)

type Advertisement struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url"`
	TargetURL string    `json:"target_url"`
	Placement string    `json:"placement" gorm:"index"`
	IsActive  bool      `json:"is_active" gorm:"index"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Advertisement) TableName() string {
	return "public.advertisements"
}

// IsLive reports whether the ad should currently be served.
func (a Advertisement) IsLive(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if now.Before(a.StartsAt) {
		return false
	}
	if !a.EndsAt.IsZero() && now.After(a.EndsAt) {
		return false
	}
	return true
}
