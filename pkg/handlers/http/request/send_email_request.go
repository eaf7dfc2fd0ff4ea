package request

import "fmt"

type SendEmailRequest struct {
	TemplateName string   `json:"template_name"`
	Recipients   []string `json:"recipients"`
	// Subject overrides the template subject when set.
	Subject string `json:"subject,omitempty"`
	// Variables fill {{placeholder}} markers in the subject and bodies.
	Variables map[string]string `json:"variables,omitempty"`
}

func (r *SendEmailRequest) Validate() error {
	if r.TemplateName == "" {
		return fmt.Errorf("template_name is required")
	}
	if len(r.Recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	for _, recipient := range r.Recipients {
		if recipient == "" {
			return fmt.Errorf("recipients must not contain empty addresses")
		}
	}
	return nil
}
