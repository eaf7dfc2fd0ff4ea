package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	corsAllowMethods = "GET, POST, PUT, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"
)

type corsMiddleware struct {
	allowOrigin string
}

// NewCorsMiddleware applies a fixed CORS policy to every response and
// short-circuits preflight requests with 200 before auth runs.
func NewCorsMiddleware(allowOrigin string) Middleware {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &corsMiddleware{allowOrigin: allowOrigin}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", m.allowOrigin)
		c.Set("Access-Control-Allow-Methods", corsAllowMethods)
		c.Set("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
