package registration

import (
	"context"

	"github.com/google/uuid"
)

type ListFilter struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Status  string
}

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Registration, error)
	List(ctx context.Context, filter ListFilter) ([]Registration, error)
	Create(ctx context.Context, registration *Registration) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
