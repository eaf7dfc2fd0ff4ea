package navigation

import (
	"time"

	"github.com/google/uuid"
)

// Item is one navigation menu record. ParentID is nil for roots; Children is
// derived by the menu tree builder and never persisted.
type Item struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title"`
	Href        string     `json:"href,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Order       int        `json:"order" gorm:"column:display_order"`
	IsActive    bool       `json:"is_active"`
	Icon        string     `json:"icon,omitempty"`
	Badge       string     `json:"badge,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Children []*Item `json:"children,omitempty" gorm:"-"`
}

func (i Item) TableName() string {
	return "public.navigation_items"
}
