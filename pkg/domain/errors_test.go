package domain

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	id := uuid.New()
	err := NewNotFoundError("event", id)

	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("loading event: %w", err)))
	assert.False(t, IsNotFound(fmt.Errorf("connection refused")))
	assert.False(t, IsNotFound(nil))
	assert.Contains(t, err.Error(), id.String())
}
