package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/config"
	"github.com/caraudioevents/platform/pkg/handlers/http/request"
	"github.com/caraudioevents/platform/pkg/infra/providers"
	"github.com/caraudioevents/platform/pkg/infra/providers/factory"
)

const contentSystemPrompt = "You write friendly, factual web page copy for a car audio " +
	"competition community site. Keep it under three paragraphs and do not invent " +
	"events, prices, or statistics."

// maxPromptLength bounds what is forwarded to the provider; anything beyond is
// silently truncated rather than rejected.
const maxPromptLength = 2000

type generateContentHandler struct {
	logger          *logrus.Logger
	providerLocator factory.ProviderLocator
	aiConfig        config.AIProviderConfig
}

func NewGenerateContentHandler(
	logger *logrus.Logger,
	providerLocator factory.ProviderLocator,
	aiConfig config.AIProviderConfig,
) Handler {
	return &generateContentHandler{
		logger:          logger,
		providerLocator: providerLocator,
		aiConfig:        aiConfig,
	}
}

// Handle produces page copy for a page type. When no AI provider is
// configured, or the provider call fails, the static template for that page
// type is served instead; the response flags which path was taken.
func (h *generateContentHandler) Handle(c *fiber.Ctx) error {
	var req request.GenerateContentRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !h.aiConfig.HasCredentials() {
		return h.serveFallback(c, req.PageType, "no AI provider configured")
	}

	client, err := h.providerLocator.Get(h.aiConfig.Name)
	if err != nil {
		h.logger.WithError(err).Warn("unknown AI provider name")
		return h.serveFallback(c, req.PageType, "no AI provider configured")
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf("Write the copy for the site's %q page.", req.PageType)
	}
	if len(prompt) > maxPromptLength {
		prompt = prompt[:maxPromptLength]
	}

	completion, err := client.Ask(c.Context(), &providers.Config{
		Credentials:  providers.Credentials{ApiKey: h.aiConfig.APIKey},
		Model:        h.aiConfig.Model,
		MaxTokens:    h.aiConfig.MaxTokens,
		Temperature:  h.aiConfig.Temperature,
		SystemPrompt: contentSystemPrompt,
	}, prompt)
	if err != nil {
		h.logger.WithError(err).Error("AI completion failed, serving fallback")
		return h.serveFallback(c, req.PageType, "provider call failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"page_type": req.PageType,
		"content":   completion.Response,
		"generated": true,
		"model":     completion.Model,
	})
}

func (h *generateContentHandler) serveFallback(c *fiber.Ctx, pageType, reason string) error {
	text, ok := providers.FallbackContent(pageType)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no template for page type"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"page_type": pageType,
		"content":   text,
		"generated": false,
		"reason":    reason,
	})
}
