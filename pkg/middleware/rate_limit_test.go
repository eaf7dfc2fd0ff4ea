package middleware_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/caraudioevents/platform/pkg/domain/ratelimit"
	"github.com/caraudioevents/platform/pkg/middleware"
	"github.com/caraudioevents/platform/pkg/ratelimit"
)

type memoryWindowRepo struct {
	windows map[string]*domain.Window
}

func newMemoryWindowRepo() *memoryWindowRepo {
	return &memoryWindowRepo{windows: make(map[string]*domain.Window)}
}

func (r *memoryWindowRepo) CurrentWindow(_ context.Context, key string, now time.Time) (*domain.Window, error) {
	w, ok := r.windows[key]
	if !ok || w.WindowEnd.Before(now) {
		return nil, nil
	}
	return w, nil
}

func (r *memoryWindowRepo) Create(_ context.Context, window *domain.Window) error {
	r.windows[window.Key] = window
	return nil
}

func (r *memoryWindowRepo) IncrementCount(_ context.Context, window *domain.Window) error {
	r.windows[window.Key] = window
	return nil
}

func (r *memoryWindowRepo) DeleteExpiredBefore(_ context.Context, key string, cutoff time.Time) error {
	if w, ok := r.windows[key]; ok && w.WindowEnd.Before(cutoff) {
		delete(r.windows, key)
	}
	return nil
}

func TestRateLimitMiddleware_RejectsOverLimit(t *testing.T) {
	logger := logrus.New()
	limiter, err := ratelimit.NewLimiter(newMemoryWindowRepo(), logger, ratelimit.Config{
		MaxRequests: 2,
		Window:      time.Minute,
		KeyPrefix:   "sensitive",
		FailOpen:    true,
	}, nil)
	require.NoError(t, err)

	rl := middleware.NewRateLimitMiddleware(logger, map[string]*ratelimit.Limiter{"sensitive": limiter})

	app := fiber.New()
	app.Post("/test", rl.Preset("sensitive"), func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Too many requests", payload["error"])
	assert.GreaterOrEqual(t, payload["retry_after"].(float64), float64(1))
}

func TestRateLimitMiddleware_UnknownPresetPassesThrough(t *testing.T) {
	logger := logrus.New()
	rl := middleware.NewRateLimitMiddleware(logger, map[string]*ratelimit.Limiter{})

	app := fiber.New()
	app.Get("/test", rl.Preset("missing"), func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCorsMiddleware_PreflightShortCircuits(t *testing.T) {
	cors := middleware.NewCorsMiddleware("*")

	app := fiber.New()
	app.Use(cors.Middleware())
	app.Post("/test", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodOptions, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Methods"))
}
