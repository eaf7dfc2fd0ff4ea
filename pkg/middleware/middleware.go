package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	CorsMiddleware         Middleware
	AuthMiddleware         Middleware
	AdminAuthMiddleware    Middleware
	RateLimitMiddleware    *RateLimitMiddleware
	MetricsMiddleware      Middleware
	PanicRecoverMiddleware Middleware
}
