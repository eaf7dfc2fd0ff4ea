package directory

import (
	"time"

	"github.com/google/uuid"
)

// Listing is one business directory entry (retailer, installer, manufacturer).
type Listing struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;index"`
	Name        string    `json:"name"`
	Category    string    `json:"category" gorm:"index"`
	Website     string    `json:"website"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	IsApproved  bool      `json:"is_approved" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l Listing) TableName() string {
	return "public.directory_listings"
}
