package supportticket

import (
	"context"

	"github.com/google/uuid"
)

type ListFilter struct {
	Status   string
	Category string
	UserID   uuid.UUID
}

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]Ticket, error)
	Create(ctx context.Context, ticket *Ticket) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
