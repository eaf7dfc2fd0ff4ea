package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain"
	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/cache"
	"github.com/caraudioevents/platform/pkg/menu"
)

type createMenuItemHandler struct {
	logger   *logrus.Logger
	menuRepo navigation.Repository
	cache    *cache.Client
}

func NewCreateMenuItemHandler(logger *logrus.Logger, menuRepo navigation.Repository, cacheClient *cache.Client) Handler {
	return &createMenuItemHandler{
		logger:   logger,
		menuRepo: menuRepo,
		cache:    cacheClient,
	}
}

// Handle appends a new item as the last sibling under its parent.
func (h *createMenuItemHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateMenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var parentID *uuid.UUID
	if req.ParentID != "" {
		parsed, err := uuid.Parse(req.ParentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid parent ID"})
		}
		if _, err := h.menuRepo.Get(c.Context(), parsed); err != nil {
			if domain.IsNotFound(err) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "parent item not found"})
			}
			h.logger.WithError(err).Error("failed to load parent item")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load parent item"})
		}
		parentID = &parsed
	}

	items, err := h.menuRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list navigation items")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list navigation items"})
	}
	forest := menu.BuildHierarchy(items)

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	entity := &navigation.Item{
		ID:          uuid.New(),
		Title:       req.Title,
		Href:        req.Href,
		ParentID:    parentID,
		Order:       menu.NextOrder(forest, parentID),
		IsActive:    isActive,
		Icon:        req.Icon,
		Badge:       req.Badge,
		Description: req.Description,
	}
	if err := h.menuRepo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create navigation item")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create navigation item"})
	}

	h.invalidateTree(c)

	return c.Status(fiber.StatusCreated).JSON(entity)
}

func (h *createMenuItemHandler) invalidateTree(c *fiber.Ctx) {
	if err := h.cache.Delete(c.Context(), cache.MenuTreeKey); err != nil {
		h.logger.WithError(err).Debug("failed to invalidate navigation tree cache")
	}
}
