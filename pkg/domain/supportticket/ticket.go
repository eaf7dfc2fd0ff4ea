package supportticket

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
	StatusClosed   = "closed"

	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

type Ticket struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	UserEmail   string    `json:"user_email"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"index"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t Ticket) TableName() string {
	return "public.support_tickets"
}
