package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"

	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
	StatusBanned    = "banned"
)

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Name           string    `json:"name"`
	Role           string    `json:"role" gorm:"index"`
	Status         string    `json:"status" gorm:"index"`
	MembershipType string    `json:"membership_type"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u User) TableName() string {
	return "public.users"
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin && u.Status == StatusActive
}

// ValidStatus reports whether s is one of the bounded status values an
// administrator may set.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPending, StatusSuspended, StatusBanned:
		return true
	}
	return false
}
