package config

import "strings"

// ProvidersConfig holds credentials and options for the external APIs the
// platform calls: the payment processor and the AI completion providers.
type ProvidersConfig struct {
	Payment PaymentProviderConfig `mapstructure:"payment"`
	AI      AIProviderConfig      `mapstructure:"ai"`
}

type PaymentProviderConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	SecretKey string `mapstructure:"secret_key"`
}

type AIProviderConfig struct {
	// openai or anthropic; anything else disables generation and the
	// handler serves the static page templates instead.
	Name        string  `mapstructure:"name"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// placeholderAPIKeys are values deployment templates ship in place of a real
// credential. They count as no key at all.
var placeholderAPIKeys = map[string]struct{}{
	"changeme":          {},
	"placeholder":       {},
	"your-api-key":      {},
	"your-api-key-here": {},
	"xxx":               {},
}

// HasCredentials reports whether the config carries a usable API key. An
// empty or placeholder key means generation is disabled and no provider
// call may be attempted.
func (c AIProviderConfig) HasCredentials() bool {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return false
	}
	if _, ok := placeholderAPIKeys[strings.ToLower(key)]; ok {
		return false
	}
	return !strings.HasPrefix(strings.ToLower(key), "your-")
}
