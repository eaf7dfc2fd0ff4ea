package request

import (
	"fmt"

	"github.com/caraudioevents/platform/pkg/domain/supportticket"
)

type CreateSupportTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

func (r *CreateSupportTicketRequest) Validate() error {
	if r.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if r.Description == "" {
		return fmt.Errorf("description is required")
	}
	switch r.Priority {
	case "", supportticket.PriorityLow, supportticket.PriorityNormal, supportticket.PriorityHigh:
	default:
		return fmt.Errorf("priority must be one of: %s, %s, %s",
			supportticket.PriorityLow, supportticket.PriorityNormal, supportticket.PriorityHigh)
	}
	return nil
}
