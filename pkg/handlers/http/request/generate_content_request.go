package request

import "fmt"

type GenerateContentRequest struct {
	PageType string `json:"page_type"`
	Prompt   string `json:"prompt,omitempty"`
}

func (r *GenerateContentRequest) Validate() error {
	if r.PageType == "" {
		return fmt.Errorf("page_type is required")
	}
	return nil
}
