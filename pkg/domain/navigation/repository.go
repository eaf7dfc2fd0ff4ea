package navigation

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// List returns the flat collection ordered by display_order ascending,
	// the order the tree builder expects.
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id uuid.UUID) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SwapOrders persists both items' order values in one transaction.
	SwapOrders(ctx context.Context, a, b *Item) error
	// ReparentChildren moves all children of parentID to newParentID.
	ReparentChildren(ctx context.Context, parentID uuid.UUID, newParentID *uuid.UUID) error
}
