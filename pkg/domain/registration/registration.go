package registration

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
	StatusCancelled      = "cancelled"
)

type Registration struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EventID        uuid.UUID `json:"event_id" gorm:"type:uuid;index"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	CompetitorName string    `json:"competitor_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	ClassID        string    `json:"class_id"`
	VehicleInfo    string    `json:"vehicle_info"`
	TeamName       string    `json:"team_name,omitempty"`
	Status         string    `json:"status" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (r Registration) TableName() string {
	return "public.registrations"
}
