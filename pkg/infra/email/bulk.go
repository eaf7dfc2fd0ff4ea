package email

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// BulkResult reports the outcome of one recipient in a bulk send.
type BulkResult struct {
	Recipient string
	MessageID string
	Err       error
}

type BulkSender struct {
	sender Sender
	delay  time.Duration
	logger *logrus.Logger
}

// NewBulkSender wraps a Sender with a fixed inter-send delay so bulk
// campaigns stay under the provider's own sending limits.
func NewBulkSender(sender Sender, delay time.Duration, logger *logrus.Logger) *BulkSender {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &BulkSender{
		sender: sender,
		delay:  delay,
		logger: logger,
	}
}

// SendToAll renders nothing itself; it sends the prepared message to each
// recipient in turn. A failed recipient is recorded and the loop continues.
// The context cancels the remainder of the batch, not an in-flight send.
func (b *BulkSender) SendToAll(ctx context.Context, recipients []string, msg Message) []BulkResult {
	results := make([]BulkResult, 0, len(recipients))
	for i, to := range recipients {
		if i > 0 {
			select {
			case <-ctx.Done():
				results = append(results, BulkResult{Recipient: to, Err: ctx.Err()})
				continue
			case <-time.After(b.delay):
			}
		}

		perMsg := msg
		perMsg.To = to
		res, err := b.sender.Send(ctx, perMsg)
		if err != nil {
			b.logger.WithError(err).WithField("recipient", to).Error("bulk send failed for recipient")
			results = append(results, BulkResult{Recipient: to, Err: err})
			continue
		}
		results = append(results, BulkResult{Recipient: to, MessageID: res.MessageID})
	}
	return results
}
