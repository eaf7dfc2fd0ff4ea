package request

import "fmt"

type CreateEmailTemplateRequest struct {
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	TextBody string `json:"text_body,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}

func (r *CreateEmailTemplateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if r.HTMLBody == "" {
		return fmt.Errorf("html_body is required")
	}
	return nil
}

type UpdateEmailTemplateRequest struct {
	Subject  *string `json:"subject,omitempty"`
	HTMLBody *string `json:"html_body,omitempty"`
	TextBody *string `json:"text_body,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
