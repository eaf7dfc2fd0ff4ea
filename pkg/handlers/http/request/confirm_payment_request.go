package request

import "fmt"

// ConfirmPaymentRequest identifies the registration and the processor-side
// payment intent. The client never asserts the payment outcome; the handler
// asks the processor directly.
type ConfirmPaymentRequest struct {
	RegistrationID  string `json:"registration_id"`
	PaymentIntentID string `json:"payment_intent_id"`
}

func (r *ConfirmPaymentRequest) Validate() error {
	if r.RegistrationID == "" {
		return fmt.Errorf("registration_id is required")
	}
	if r.PaymentIntentID == "" {
		return fmt.Errorf("payment_intent_id is required")
	}
	return nil
}
