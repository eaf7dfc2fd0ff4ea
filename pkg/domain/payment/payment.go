package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment records one confirmed charge. Rows are written once by the confirm
// payment handler and never mutated.
type Payment struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RegistrationID  uuid.UUID `json:"registration_id" gorm:"type:uuid;index"`
	UserID          uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	PaymentIntentID string    `json:"payment_intent_id" gorm:"uniqueIndex"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func (p Payment) TableName() string {
	return "public.payments"
}
