package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBaseURL    = "https://api.sendgrid.com/v3"
	httpClientTimeout = 30 * time.Second
	messageIDHeader   = "X-Message-Id"
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	From    string
}

type SendResult struct {
	MessageID string
}

type Sender interface {
	Send(ctx context.Context, msg Message) (*SendResult, error)
}

type client struct {
	baseURL     string
	apiKey      string
	fromAddress string
	fromName    string
	httpClient  *http.Client
}

func NewClient(baseURL, apiKey, fromAddress, fromName string) Sender {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		fromAddress: fromAddress,
		fromName:    fromName,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

type sendPayload struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

type personalization struct {
	To []address `json:"to"`
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send posts one transactional email. HTTP 200 and 202 both count as
// accepted; the provider-assigned message id is read from the response
// header, with a synthesized placeholder when the header is absent.
func (c *client) Send(ctx context.Context, msg Message) (*SendResult, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("email provider API key is required")
	}
	if msg.To == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if msg.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if msg.HTML == "" {
		return nil, fmt.Errorf("html body is required")
	}

	from := msg.From
	if from == "" {
		from = c.fromAddress
	}

	payload := sendPayload{
		Personalizations: []personalization{{To: []address{{Email: msg.To}}}},
		From:             address{Email: from, Name: c.fromName},
		Subject:          msg.Subject,
	}
	if msg.Text != "" {
		payload.Content = append(payload.Content, content{Type: "text/plain", Value: msg.Text})
	}
	payload.Content = append(payload.Content, content{Type: "text/html", Value: msg.HTML})

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail/send", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		var preview bytes.Buffer
		_, _ = io.CopyN(&preview, resp.Body, 8*1024)
		return nil, fmt.Errorf("email provider returned status %d: %s", resp.StatusCode, preview.String())
	}

	messageID := resp.Header.Get(messageIDHeader)
	if messageID == "" {
		messageID = "local-" + uuid.NewString()
	}

	return &SendResult{MessageID: messageID}, nil
}
