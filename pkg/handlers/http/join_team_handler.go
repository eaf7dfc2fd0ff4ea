package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/team"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/infra/repository"
)

type joinTeamHandler struct {
	logger   *logrus.Logger
	teamRepo team.Repository
}

func NewJoinTeamHandler(logger *logrus.Logger, teamRepo team.Repository) Handler {
	return &joinTeamHandler{
		logger:   logger,
		teamRepo: teamRepo,
	}
}

func (h *joinTeamHandler) Handle(c *fiber.Ctx) error {
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

	membership := &team.Membership{
		ID:     uuid.New(),
		TeamID: entity.ID,
		UserID: actor.ID,
	}
	if err := h.teamRepo.AddMember(c.Context(), membership); err != nil {
		if errors.Is(err, repository.ErrAlreadyTeamMember) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "already a member of this team"})
		}
		h.logger.WithError(err).Error("failed to join team")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to join team"})
	}

	return c.Status(fiber.StatusCreated).JSON(membership)
}
