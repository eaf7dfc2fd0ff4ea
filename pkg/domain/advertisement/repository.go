package advertisement

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Advertisement, error)
	List(ctx context.Context, placement string) ([]Advertisement, error)
	Create(ctx context.Context, ad *Advertisement) error
	Update(ctx context.Context, ad *Advertisement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
