package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError reports that a requested entity does not exist. Repositories
// return it on missing rows so handlers can map lookups to a 404 without
// matching on error strings.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

func NewNotFoundError(entity string, id uuid.UUID) error {
	return &NotFoundError{Entity: entity, Key: id.String()}
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
