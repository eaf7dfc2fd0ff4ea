package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackContent(t *testing.T) {
	text, ok := FallbackContent("about")
	assert.True(t, ok)
	assert.NotEmpty(t, text)

	_, ok = FallbackContent("nonexistent-page")
	assert.False(t, ok)
}
