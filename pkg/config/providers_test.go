package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProviderConfigHasCredentials(t *testing.T) {
	assert.False(t, AIProviderConfig{}.HasCredentials())
	assert.False(t, AIProviderConfig{APIKey: "   "}.HasCredentials())
	assert.False(t, AIProviderConfig{APIKey: "changeme"}.HasCredentials())
	assert.False(t, AIProviderConfig{APIKey: "CHANGEME"}.HasCredentials())
	assert.False(t, AIProviderConfig{APIKey: "your-api-key-here"}.HasCredentials())
	assert.False(t, AIProviderConfig{APIKey: "your-openai-key"}.HasCredentials())
	assert.True(t, AIProviderConfig{APIKey: "sk-live-0123456789"}.HasCredentials())
}
