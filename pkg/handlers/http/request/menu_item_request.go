package request

import "fmt"

type CreateMenuItemRequest struct {
	Title       string `json:"title"`
	Href        string `json:"href,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Badge       string `json:"badge,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r *CreateMenuItemRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

type UpdateMenuItemRequest struct {
	Title       *string `json:"title,omitempty"`
	Href        *string `json:"href,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Badge       *string `json:"badge,omitempty"`
	Description *string `json:"description,omitempty"`
}

type MoveMenuItemRequest struct {
	Direction string `json:"direction"`
}

func (r *MoveMenuItemRequest) Validate() error {
	if r.Direction != "up" && r.Direction != "down" {
		return fmt.Errorf("direction must be 'up' or 'down'")
	}
	return nil
}
