package auditlog

import "context"

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	ListByTarget(ctx context.Context, targetType, targetID string) ([]Entry, error)
}
