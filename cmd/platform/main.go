package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/caraudioevents/platform/pkg/config"
	ratelimitdomain "github.com/caraudioevents/platform/pkg/domain/ratelimit"
	handlers "github.com/caraudioevents/platform/pkg/handlers/http"
	"github.com/caraudioevents/platform/pkg/infra/auditlogs"
	"github.com/caraudioevents/platform/pkg/infra/cache"
	"github.com/caraudioevents/platform/pkg/infra/database"
	"github.com/caraudioevents/platform/pkg/infra/email"
	"github.com/caraudioevents/platform/pkg/infra/jwt"
	infraLogger "github.com/caraudioevents/platform/pkg/infra/logger"
	"github.com/caraudioevents/platform/pkg/infra/payments"
	"github.com/caraudioevents/platform/pkg/infra/prometheus"
	"github.com/caraudioevents/platform/pkg/infra/providers/factory"
	"github.com/caraudioevents/platform/pkg/infra/repository"
	"github.com/caraudioevents/platform/pkg/middleware"
	"github.com/caraudioevents/platform/pkg/ratelimit"
	"github.com/caraudioevents/platform/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	prometheus.Initialize()

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize cache: %v", err)
	}
	defer cacheClient.Close()

	// repository
	userRepository := repository.NewUserRepository(db.DB)
	navigationRepository := repository.NewNavigationRepository(db.DB)
	eventRepository := repository.NewEventRepository(db.DB)
	registrationRepository := repository.NewRegistrationRepository(db.DB)
	paymentRepository := repository.NewPaymentRepository(db.DB)
	teamRepository := repository.NewTeamRepository(db.DB)
	directoryRepository := repository.NewDirectoryRepository(db.DB)
	emailTemplateRepository := repository.NewEmailTemplateRepository(db.DB)
	advertisementRepository := repository.NewAdvertisementRepository(db.DB)
	supportTicketRepository := repository.NewSupportTicketRepository(db.DB)
	auditLogRepository := repository.NewAuditLogRepository(db.DB)
	rateLimitRepository := repository.NewRateLimitRepository(db.DB)

	// infra services
	jwtManager := jwt.NewJwtManager(cfg.Server.SecretKey)
	paymentClient := payments.NewClient(cfg.Providers.Payment.BaseURL, cfg.Providers.Payment.SecretKey)
	emailSender := email.NewClient("", cfg.Email.APIKey, cfg.Email.FromAddress, cfg.Email.FromName)
	bulkSender := email.NewBulkSender(emailSender, cfg.Email.BulkDelay(), logger)
	providerLocator := factory.NewProviderLocator()
	auditWriter := auditlogs.NewService(auditLogRepository, logger)

	limiters, err := buildLimiters(cfg, rateLimitRepository, logger)
	if err != nil {
		logger.Fatalf("Failed to build rate limiters: %v", err)
	}

	// middleware
	middlewareTransport := middleware.Transport{
		CorsMiddleware:         middleware.NewCorsMiddleware(os.Getenv("ALLOW_ORIGIN")),
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, jwtManager, userRepository),
		AdminAuthMiddleware:    middleware.NewAdminAuthMiddleware(logger),
		RateLimitMiddleware:    middleware.NewRateLimitMiddleware(logger, limiters),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(logger),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}

	// Handler Transport
	handlerTransport := handlers.HandlerTransport{
		// Version
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
		// Users
		ListUsersHandler:        handlers.NewListUsersHandler(logger, userRepository),
		GetProfileHandler:       handlers.NewGetProfileHandler(logger),
		UpdateProfileHandler:    handlers.NewUpdateProfileHandler(logger, userRepository),
		UpdateUserStatusHandler: handlers.NewUpdateUserStatusHandler(logger, userRepository, auditWriter),
		// Billing
		ConfirmPaymentHandler: handlers.NewConfirmPaymentHandler(
			logger, registrationRepository, paymentRepository, paymentClient, auditWriter,
		),
		ListPaymentsHandler: handlers.NewListPaymentsHandler(logger, paymentRepository),
		// Email
		SendEmailHandler: handlers.NewSendEmailHandler(logger, emailTemplateRepository, bulkSender, auditWriter),
		// Content generation
		GenerateContentHandler: handlers.NewGenerateContentHandler(logger, providerLocator, cfg.Providers.AI),
		// Navigation menu
		ListMenuHandler:       handlers.NewListMenuHandler(logger, navigationRepository, cacheClient),
		CreateMenuItemHandler: handlers.NewCreateMenuItemHandler(logger, navigationRepository, cacheClient),
		UpdateMenuItemHandler: handlers.NewUpdateMenuItemHandler(logger, navigationRepository, cacheClient),
		DeleteMenuItemHandler: handlers.NewDeleteMenuItemHandler(logger, navigationRepository, cacheClient),
		MoveMenuItemHandler:   handlers.NewMoveMenuItemHandler(logger, navigationRepository, cacheClient),
		// Events
		CreateEventHandler: handlers.NewCreateEventHandler(logger, eventRepository, auditWriter),
		ListEventsHandler:  handlers.NewListEventsHandler(logger, eventRepository),
		GetEventHandler:    handlers.NewGetEventHandler(logger, eventRepository),
		UpdateEventHandler: handlers.NewUpdateEventHandler(logger, eventRepository),
		DeleteEventHandler: handlers.NewDeleteEventHandler(logger, eventRepository, auditWriter),
		EventStatsHandler:  handlers.NewEventStatsHandler(logger, eventRepository),
		// Registrations
		CreateRegistrationHandler: handlers.NewCreateRegistrationHandler(logger, eventRepository, registrationRepository),
		ListRegistrationsHandler:  handlers.NewListRegistrationsHandler(logger, registrationRepository),
		// Teams
		CreateTeamHandler: handlers.NewCreateTeamHandler(logger, teamRepository),
		ListTeamsHandler:  handlers.NewListTeamsHandler(logger, teamRepository),
		GetTeamHandler:    handlers.NewGetTeamHandler(logger, teamRepository),
		JoinTeamHandler:   handlers.NewJoinTeamHandler(logger, teamRepository),
		LeaveTeamHandler:  handlers.NewLeaveTeamHandler(logger, teamRepository),
		// Directory
		ListDirectoryHandler:          handlers.NewListDirectoryHandler(logger, directoryRepository, cacheClient),
		CreateDirectoryListingHandler: handlers.NewCreateDirectoryListingHandler(logger, directoryRepository),
		UpdateDirectoryListingHandler: handlers.NewUpdateDirectoryListingHandler(logger, directoryRepository, cacheClient),
		DeleteDirectoryListingHandler: handlers.NewDeleteDirectoryListingHandler(logger, directoryRepository, cacheClient),
		// Email templates
		CreateEmailTemplateHandler: handlers.NewCreateEmailTemplateHandler(logger, emailTemplateRepository),
		ListEmailTemplatesHandler:  handlers.NewListEmailTemplatesHandler(logger, emailTemplateRepository),
		UpdateEmailTemplateHandler: handlers.NewUpdateEmailTemplateHandler(logger, emailTemplateRepository),
		DeleteEmailTemplateHandler: handlers.NewDeleteEmailTemplateHandler(logger, emailTemplateRepository),
		// Advertisements
		ListAdvertisementsHandler:  handlers.NewListAdvertisementsHandler(logger, advertisementRepository),
		CreateAdvertisementHandler: handlers.NewCreateAdvertisementHandler(logger, advertisementRepository),
		UpdateAdvertisementHandler: handlers.NewUpdateAdvertisementHandler(logger, advertisementRepository),
		DeleteAdvertisementHandler: handlers.NewDeleteAdvertisementHandler(logger, advertisementRepository),
		// Support
		CreateSupportTicketHandler: handlers.NewCreateSupportTicketHandler(logger, supportTicketRepository),
		ListSupportTicketsHandler:  handlers.NewListSupportTicketsHandler(logger, supportTicketRepository),
	}

	srv := server.NewAdminServer(server.DI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

func buildLimiters(
	cfg *config.Config,
	repo ratelimitdomain.Repository,
	logger *logrus.Logger,
) (map[string]*ratelimit.Limiter, error) {
	limiters := make(map[string]*ratelimit.Limiter, len(cfg.RateLimit.Presets))
	for name, preset := range cfg.RateLimit.Presets {
		window, err := preset.WindowDuration()
		if err != nil {
			return nil, fmt.Errorf("preset %q has an invalid window: %w", name, err)
		}
		limiter, err := ratelimit.NewLimiter(repo, logger, ratelimit.Config{
			MaxRequests: preset.MaxRequests,
			Window:      window,
			KeyPrefix:   name,
			FailOpen:    cfg.RateLimit.FailOpen,
		}, nil)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		limiters[name] = limiter
	}
	return limiters, nil
}
