package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type adminAuthMiddleware struct {
	logger *logrus.Logger
}

// NewAdminAuthMiddleware runs after NewAuthMiddleware and rejects callers
// whose user record is not an active admin.
func NewAdminAuthMiddleware(logger *logrus.Logger) Middleware {
	return &adminAuthMiddleware{logger: logger}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		entity, ok := ctx.Locals(common.UserContextKey).(*user.User)
		if !ok {
			m.logger.Error("admin check reached without an authenticated user")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}

		if !entity.IsAdmin() {
			m.logger.WithField("user_id", entity.ID).Debug("non-admin attempted admin operation")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
		}

		return ctx.Next()
	}
}
