package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Route pattern, not the raw path, to keep label cardinality bounded.
		route := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()

		prometheus.RequestTotal.WithLabelValues(method, route, statusClass(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(method, route).
			Observe(float64(time.Since(start).Milliseconds()))

		if status == fiber.StatusTooManyRequests {
			prometheus.RateLimitRejections.WithLabelValues(route).Inc()
		}

		return err
	}
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
