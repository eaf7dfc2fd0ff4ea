package event

import (
	"context"

	"github.com/google/uuid"
)

type ListFilter struct {
	Status    string
	EventType string
	Limit     int
	Offset    int
}

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, filter ListFilter) ([]Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, id uuid.UUID) (*Stats, error)
}
