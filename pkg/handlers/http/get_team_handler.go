package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/team"
)

type getTeamHandler struct {
	logger   *logrus.Logger
	teamRepo team.Repository
}

func NewGetTeamHandler(logger *logrus.Logger, teamRepo team.Repository) Handler {
	return &getTeamHandler{
		logger:   logger,
		teamRepo: teamRepo,
	}
}

func (h *getTeamHandler) Handle(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid team ID"})
	}

	entity, err := h.teamRepo.Get(c.Context(), teamID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		h.logger.WithError(err).Error("failed to load team")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load team"})
	}

	members, err := h.teamRepo.ListMembers(c.Context(), entity.ID)
	if err != nil {
		h.logger.WithError(err).Error("failed to list team members")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list team members"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"team":    entity,
		"members": members,
	})
}
