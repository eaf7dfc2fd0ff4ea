package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type getProfileHandler struct {
	logger *logrus.Logger
}

func NewGetProfileHandler(logger *logrus.Logger) Handler {
	return &getProfileHandler{logger: logger}
}

func (h *getProfileHandler) Handle(c *fiber.Ctx) error {
	entity, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		h.logger.Error("profile handler reached without an authenticated user")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
