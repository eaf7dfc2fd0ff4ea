package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/team"
	"github.com/caraudioevents/platform/pkg/domain/user"
)

type leaveTeamHandler struct {
	logger   *logrus.Logger
	teamRepo team.Repository
}

func NewLeaveTeamHandler(logger *logrus.Logger, teamRepo team.Repository) Handler {
	return &leaveTeamHandler{
		logger:   logger,
		teamRepo: teamRepo,
	}
}

// Handle removes the caller from a team. The captain must transfer or delete
// the team rather than walk away from it.
func (h *leaveTeamHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

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

	if entity.CaptainID == actor.ID {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "captain cannot leave the team"})
	}

	if err := h.teamRepo.RemoveMember(c.Context(), entity.ID, actor.ID); err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "membership not found"})
		}
		h.logger.WithError(err).Error("failed to remove membership")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to leave team"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
