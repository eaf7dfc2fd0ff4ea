package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type updateProfileHandler struct {
	logger   *logrus.Logger
	userRepo user.Repository
}

func NewUpdateProfileHandler(logger *logrus.Logger, userRepo user.Repository) Handler {
	return &updateProfileHandler{
		logger:   logger,
		userRepo: userRepo,
	}
}

// Handle updates the caller's own profile fields. Role and status are not
// reachable from here; those change only through the admin endpoint.
func (h *updateProfileHandler) Handle(c *fiber.Ctx) error {
	entity, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Location != nil {
		entity.Location = *req.Location
	}
	if req.Bio != nil {
		entity.Bio = *req.Bio
	}
	if req.MembershipType != nil {
		entity.MembershipType = *req.MembershipType
	}

	if err := h.userRepo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update profile"})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
