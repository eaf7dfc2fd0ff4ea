package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/team"
)

type listTeamsHandler struct {
	logger   *logrus.Logger
	teamRepo team.Repository
}

func NewListTeamsHandler(logger *logrus.Logger, teamRepo team.Repository) Handler {
	return &listTeamsHandler{
		logger:   logger,
		teamRepo: teamRepo,
	}
}

func (h *listTeamsHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", defaultPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}

	teams, err := h.teamRepo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list teams")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list teams"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"teams": teams})
}
