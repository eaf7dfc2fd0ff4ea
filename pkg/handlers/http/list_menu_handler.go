package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/navigation"
	"github.com/caraudioevents/platform/pkg/infra/cache"
	"github.com/caraudioevents/platform/pkg/menu"
)

type listMenuHandler struct {
	logger   *logrus.Logger
	menuRepo navigation.Repository
	cache    *cache.Client
}

func NewListMenuHandler(logger *logrus.Logger, menuRepo navigation.Repository, cacheClient *cache.Client) Handler {
	return &listMenuHandler{
		logger:   logger,
		menuRepo: menuRepo,
		cache:    cacheClient,
	}
}

// Handle serves the navigation tree. The rendered forest is cached; write
// handlers invalidate the key.
func (h *listMenuHandler) Handle(c *fiber.Ctx) error {
	if cached, err := h.cache.Get(c.Context(), cache.MenuTreeKey); err == nil && cached != "" {
		c.Set("Content-Type", "application/json")
		return c.Status(fiber.StatusOK).SendString(cached)
	}

	items, err := h.menuRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list navigation items")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list navigation items"})
	}

	forest := menu.BuildHierarchy(items)

	payload, err := json.Marshal(fiber.Map{"items": forest})
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal navigation tree")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render navigation tree"})
	}

	if err := h.cache.Set(c.Context(), cache.MenuTreeKey, string(payload), cache.MenuTreeTTL); err != nil {
		h.logger.WithError(err).Debug("failed to cache navigation tree")
	}

	c.Set("Content-Type", "application/json")
	return c.Status(fiber.StatusOK).Send(payload)
}
