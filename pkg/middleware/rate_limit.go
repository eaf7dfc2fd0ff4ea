package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/ratelimit"
)

// RateLimitMiddleware applies one of the named preset limiters to a route.
// The caller identity is the authenticated user id when present, the client
// IP otherwise.
type RateLimitMiddleware struct {
	logger   *logrus.Logger
	limiters map[string]*ratelimit.Limiter
}

func NewRateLimitMiddleware(logger *logrus.Logger, limiters map[string]*ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		logger:   logger,
		limiters: limiters,
	}
}

func (m *RateLimitMiddleware) Preset(name string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		limiter, ok := m.limiters[name]
		if !ok {
			m.logger.WithField("preset", name).Error("unknown rate limit preset, skipping check")
			return ctx.Next()
		}

		identifier := ctx.IP()
		if entity, ok := ctx.Locals(common.UserContextKey).(*user.User); ok {
			identifier = entity.ID.String()
		}

		result := limiter.Check(ctx.Context(), identifier)

		ctx.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		ctx.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		ctx.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			ctx.Set("Retry-After", strconv.Itoa(result.RetryAfter))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Too many requests",
				"retry_after": result.RetryAfter,
			})
		}

		return ctx.Next()
	}
}
