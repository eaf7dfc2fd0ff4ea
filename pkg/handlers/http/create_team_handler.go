package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/team"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createTeamHandler struct {
	logger   *logrus.Logger
	teamRepo team.Repository
}

func NewCreateTeamHandler(logger *logrus.Logger, teamRepo team.Repository) Handler {
	return &createTeamHandler{
		logger:   logger,
		teamRepo: teamRepo,
	}
}

// Handle creates a team with the caller as captain and first member.
func (h *createTeamHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := &team.Team{
		ID:          uuid.New(),
		Name:        req.Name,
		CaptainID:   actor.ID,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := h.teamRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create team")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create team"})
	}

	membership := &team.Membership{
		ID:     uuid.New(),
		TeamID: entity.ID,
		UserID: actor.ID,
	}
	if err := h.teamRepo.AddMember(c.Context(), membership); err != nil {
		h.logger.WithError(err).Error("failed to add captain membership")
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
