package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/common"
	"github.com/caraudioevents/platform/pkg/domain/directory"
	"github.com/caraudioevents/platform/pkg/domain/user"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
)

type createDirectoryListingHandler struct {
	logger        *logrus.Logger
	directoryRepo directory.Repository
}

// NewCreateDirectoryListingHandler needs no cache handle: new listings start
// unapproved and are invisible to the cached public list until approval.
func NewCreateDirectoryListingHandler(
	logger *logrus.Logger,
	directoryRepo directory.Repository,
) Handler {
	return &createDirectoryListingHandler{
		logger:        logger,
		directoryRepo: directoryRepo,
	}
}

// Handle submits a listing owned by the caller. Listings start unapproved
// and only appear publicly once an admin approves them.
func (h *createDirectoryListingHandler) Handle(c *fiber.Ctx) error {
	actor, ok := c.Locals(common.UserContextKey).(*user.User)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
	}

	var req request.CreateDirectoryListingRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entity := &directory.Listing{
		ID:          uuid.New(),
		OwnerID:     actor.ID,
		Name:        req.Name,
		Category:    req.Category,
		Website:     req.Website,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		IsApproved:  false,
	}
	if err := h.directoryRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create directory listing")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create directory listing"})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
