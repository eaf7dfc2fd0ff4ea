package request

import "fmt"

type CreateRegistrationRequest struct {
	EventID        string `json:"event_id"`
	CompetitorName string `json:"competitor_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	ClassID        string `json:"class_id"`
	VehicleInfo    string `json:"vehicle_info,omitempty"`
	TeamName       string `json:"team_name,omitempty"`
}

func (r *CreateRegistrationRequest) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if r.CompetitorName == "" {
		return fmt.Errorf("competitor_name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.ClassID == "" {
		return fmt.Errorf("class_id is required")
	}
	return nil
}
