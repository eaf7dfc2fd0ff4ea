package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/user"
)

const defaultPageSize = 50

type listUsersHandler struct {
	logger   *logrus.Logger
	userRepo user.Repository
}

func NewListUsersHandler(logger *logrus.Logger, userRepo user.Repository) Handler {
	return &listUsersHandler{
		logger:   logger,
		userRepo: userRepo,
	}
}

func (h *listUsersHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}

	users, err := h.userRepo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list users")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list users"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users":  users,
		"offset": offset,
		"limit":  limit,
	})
}
