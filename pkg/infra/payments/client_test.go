package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveIntent_Succeeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment_intents/pi_123", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","status":"succeeded","amount":4500,"currency":"usd"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	intent, err := c.RetrieveIntent(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, IntentStatusSucceeded, intent.Status)
	assert.Equal(t, int64(4500), intent.Amount)
}

func TestRetrieveIntent_ProcessorError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"No such payment_intent"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	_, err := c.RetrieveIntent(context.Background(), "pi_missing")
	assert.Error(t, err)
}

func TestRetrieveIntent_MissingKey(t *testing.T) {
	c := NewClient("", "")
	_, err := c.RetrieveIntent(context.Background(), "pi_123")
	assert.Error(t, err)
}

func TestRetrieveIntent_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sk_test")
	for i := 0; i < 5; i++ {
		_, err := c.RetrieveIntent(context.Background(), "pi_123")
		require.Error(t, err)
	}

	// Breaker is open now; the request fails without reaching the server.
	_, err := c.RetrieveIntent(context.Background(), "pi_123")
	assert.ErrorContains(t, err, "breaker")
}
