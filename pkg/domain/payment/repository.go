package payment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*Payment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Payment, error)
	Create(ctx context.Context, payment *Payment) error
}
