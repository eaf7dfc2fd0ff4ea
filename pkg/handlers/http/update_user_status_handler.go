package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
)

type updateUserStatusHandler struct {
	logger      *logrus.Logger
	userRepo    user.Repository
	auditWriter auditlogs.Service
}

func NewUpdateUserStatusHandler(
	logger *logrus.Logger,
	userRepo user.Repository,
	auditWriter auditlogs.Service,
) Handler {
	return &updateUserStatusHandler{
		logger:      logger,
		userRepo:    userRepo,
		auditWriter: auditWriter,
	}
}

// Handle sets a member's account status to one of the bounded values. Admins
// cannot change their own status through this endpoint.
func (h *updateUserStatusHandler) Handle(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid user ID"})
	}

	var req request.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !user.ValidStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status value"})
	}

	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}
	if actor.ID == targetID {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "cannot change own status"})
	}

	target, err := h.userRepo.Get(c.Context(), targetID)
	if err != nil {
		if domain.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
		}
		h.logger.WithError(err).Error("failed to load user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load user"})
	}

	if err := h.userRepo.UpdateStatus(c.Context(), target.ID, req.Status); err != nil {
		h.logger.WithError(err).Error("failed to update user status")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update user status"})
	}

	h.auditWriter.Write(c.Context(), auditlogs.Record{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     "user.status_changed",
		TargetType: "user",
		TargetID:   target.ID.String(),
		Detail:     target.Status + " -> " + req.Status,
		IPAddress:  c.IP(),
	})

	target.Status = req.Status
	return c.Status(fiber.StatusOK).JSON(target)
}
