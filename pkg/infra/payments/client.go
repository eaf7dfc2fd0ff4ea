package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBaseURL    = "https://api.stripe.com/v1"
	httpClientTimeout = 15 * time.Second

	IntentStatusSucceeded = "succeeded"
)

// Intent is the processor's server-side view of a payment attempt. Only the
// Status reported here is trusted; client-asserted success is ignored.
type Intent struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Client interface {
	RetrieveIntent(ctx context.Context, intentID string) (*Intent, error)
}

type client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(baseURL, secretKey string) Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	settings := gobreaker.Settings{
		Name:        "payment-processor",
		MaxRequests: 5,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *client) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	if c.secretKey == "" {
		return nil, fmt.Errorf("payment processor secret key is required")
	}
	if intentID == "" {
		return nil, fmt.Errorf("payment intent id is required")
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.retrieveIntent(ctx, intentID)
	})
	if err != nil {
		return nil, fmt.Errorf("breaker (%s): %w", "payment-processor", err)
	}

	intent, ok := result.(*Intent)
	if !ok {
		return nil, fmt.Errorf("unexpected response type from breaker")
	}
	return intent, nil
}

func (c *client) retrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	endpoint := fmt.Sprintf("%s/payment_intents/%s", c.baseURL, url.PathEscape(intentID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment processor returned status %d: %s", resp.StatusCode, string(body))
	}

	var intent Intent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent: %w", err)
	}

	return &intent, nil
}
