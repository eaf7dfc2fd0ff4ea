package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/domain/emailtemplate"
)

type listEmailTemplatesHandler struct {
	logger       *logrus.Logger
	templateRepo emailtemplate.Repository
}

func NewListEmailTemplatesHandler(logger *logrus.Logger, templateRepo emailtemplate.Repository) Handler {
	return &listEmailTemplatesHandler{
		logger:       logger,
		templateRepo: templateRepo,
	}
}

func (h *listEmailTemplatesHandler) Handle(c *fiber.Ctx) error {
	templates, err := h.templateRepo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list email templates")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list email templates"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"templates": templates})
}
