package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	CaptainID   uuid.UUID `json:"captain_id" gorm:"type:uuid;index"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t Team) TableName() string {
	return "public.teams"
}

type Membership struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;index:idx_team_member,unique"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;index:idx_team_member,unique"`
	JoinedAt time.Time `json:"joined_at"`
}

func (m Membership) TableName() string {
	return "public.team_memberships"
}
