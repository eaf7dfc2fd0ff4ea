package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/caraudioevents/platform/pkg/config"
	handlers "github.com/caraudioevents/platform/pkg/handlers/http"
	"github.com/caraudioevents/platform/pkg/middleware"
)

type Server interface {
	Run() error
	Shutdown() error
}

type DI struct {
	MiddlewareTransport middleware.Transport
	HandlerTransport    handlers.HandlerTransport
	Config              *config.Config
	Logger              *logrus.Logger
}

type AdminServer struct {
	config              *config.Config
	logger              *logrus.Logger
	router              *fiber.App
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewAdminServer(di DI) *AdminServer {
	router := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             4 * 1024 * 1024,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
	})

	return &AdminServer{
		config:              di.Config,
		logger:              di.Logger,
		router:              router,
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("Starting server")
	return s.router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	mw := s.middlewareTransport
	h := s.handlerTransport

	s.router.Use(mw.PanicRecoverMiddleware.Middleware())
	s.router.Use(mw.CorsMiddleware.Middleware())
	s.router.Use(mw.MetricsMiddleware.Middleware())

	v1 := s.router.Group("/api/v1")

	// Public pages need no session.
	v1.Get("/version", h.GetVersionHandler.Handle)
	v1.Get("/menu", h.ListMenuHandler.Handle)
	v1.Get("/directory", h.ListDirectoryHandler.Handle)
	v1.Get("/advertisements", h.ListAdvertisementsHandler.Handle)
	v1.Get("/events", h.ListEventsHandler.Handle)
	v1.Get("/events/:event_id", h.GetEventHandler.Handle)

	// Member routes require an authenticated session.
	member := v1.Group("", mw.AuthMiddleware.Middleware())
	{
		member.Get("/profile", h.GetProfileHandler.Handle)
		member.Put("/profile", h.UpdateProfileHandler.Handle)

		member.Get("/payments", h.ListPaymentsHandler.Handle)
		member.Post("/payments/confirm",
			mw.RateLimitMiddleware.Preset("billable"),
			h.ConfirmPaymentHandler.Handle)

		member.Post("/registrations",
			mw.RateLimitMiddleware.Preset("webhook"),
			h.CreateRegistrationHandler.Handle)
		member.Get("/registrations", h.ListRegistrationsHandler.Handle)

		teams := member.Group("/teams")
		{
			teams.Post("", h.CreateTeamHandler.Handle)
			teams.Get("", h.ListTeamsHandler.Handle)
			teams.Get("/:team_id", h.GetTeamHandler.Handle)
			teams.Post("/:team_id/join", h.JoinTeamHandler.Handle)
			teams.Post("/:team_id/leave", h.LeaveTeamHandler.Handle)
		}

		member.Post("/directory", h.CreateDirectoryListingHandler.Handle)

		member.Post("/support/tickets", h.CreateSupportTicketHandler.Handle)

		member.Post("/content/generate",
			mw.RateLimitMiddleware.Preset("billable"),
			h.GenerateContentHandler.Handle)
	}

	// Admin routes additionally require the admin role.
	admin := v1.Group("/admin", mw.AuthMiddleware.Middleware(), mw.AdminAuthMiddleware.Middleware())
	{
		admin.Get("/users", h.ListUsersHandler.Handle)
		admin.Patch("/users/:user_id/status",
			mw.RateLimitMiddleware.Preset("sensitive"),
			h.UpdateUserStatusHandler.Handle)

		admin.Post("/emails/send",
			mw.RateLimitMiddleware.Preset("sensitive"),
			h.SendEmailHandler.Handle)

		templates := admin.Group("/email/templates")
		{
			templates.Post("", h.CreateEmailTemplateHandler.Handle)
			templates.Get("", h.ListEmailTemplatesHandler.Handle)
			templates.Put("/:template_id", h.UpdateEmailTemplateHandler.Handle)
			templates.Delete("/:template_id", h.DeleteEmailTemplateHandler.Handle)
		}

		menu := admin.Group("/menu")
		{
			menu.Post("", h.CreateMenuItemHandler.Handle)
			menu.Put("/:item_id", h.UpdateMenuItemHandler.Handle)
			menu.Delete("/:item_id", h.DeleteMenuItemHandler.Handle)
			menu.Post("/:item_id/move", h.MoveMenuItemHandler.Handle)
		}

		events := admin.Group("/events")
		{
			events.Post("", h.CreateEventHandler.Handle)
			events.Put("/:event_id", h.UpdateEventHandler.Handle)
			events.Delete("/:event_id", h.DeleteEventHandler.Handle)
			events.Get("/:event_id/stats", h.EventStatsHandler.Handle)
		}

		directory := admin.Group("/directory")
		{
			directory.Put("/:listing_id", h.UpdateDirectoryListingHandler.Handle)
			directory.Delete("/:listing_id", h.DeleteDirectoryListingHandler.Handle)
		}

		ads := admin.Group("/advertisements")
		{
			ads.Post("", h.CreateAdvertisementHandler.Handle)
			ads.Put("/:ad_id", h.UpdateAdvertisementHandler.Handle)
			ads.Delete("/:ad_id", h.DeleteAdvertisementHandler.Handle)
		}

		admin.Get("/support/tickets", h.ListSupportTicketsHandler.Handle)
	}
}

func (s *AdminServer) setupHealthCheck() {
	s.router.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}

func (s *AdminServer) setupMetricsEndpoint() {
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s.router.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})
}

func (s *AdminServer) Shutdown() error {
	return s.router.Shutdown()
}
