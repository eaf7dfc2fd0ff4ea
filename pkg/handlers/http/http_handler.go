package http

import "github.com/gofiber/fiber/v2"

const ErrInvalidJsonPayload = "invalid json payload"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Version
	GetVersionHandler Handler

	// Users
	ListUsersHandler        Handler
	GetProfileHandler       Handler
	UpdateProfileHandler    Handler
	UpdateUserStatusHandler Handler

	// Billing
	ConfirmPaymentHandler Handler
	ListPaymentsHandler   Handler

	// Email
	SendEmailHandler Handler

	// Content generation
	GenerateContentHandler Handler

	// Navigation menu
	ListMenuHandler       Handler
	CreateMenuItemHandler Handler
	UpdateMenuItemHandler Handler
	DeleteMenuItemHandler Handler
	MoveMenuItemHandler   Handler

	// Events
	CreateEventHandler Handler
	ListEventsHandler  Handler
	GetEventHandler    Handler
	UpdateEventHandler Handler
	DeleteEventHandler Handler
	EventStatsHandler  Handler

	// Registrations
	CreateRegistrationHandler Handler
	ListRegistrationsHandler  Handler

	// Teams
	CreateTeamHandler Handler
	ListTeamsHandler  Handler
	GetTeamHandler    Handler
	JoinTeamHandler   Handler
	LeaveTeamHandler  Handler

	// Directory
	ListDirectoryHandler          Handler
	CreateDirectoryListingHandler Handler
	UpdateDirectoryListingHandler Handler
	DeleteDirectoryListingHandler Handler

	// Email templates
	CreateEmailTemplateHandler Handler
	ListEmailTemplatesHandler  Handler
	UpdateEmailTemplateHandler Handler
	DeleteEmailTemplateHandler Handler

	// Advertisements
	ListAdvertisementsHandler  Handler
	CreateAdvertisementHandler Handler
	UpdateAdvertisementHandler Handler
	DeleteAdvertisementHandler Handler

	// Support
	CreateSupportTicketHandler Handler
	ListSupportTicketsHandler  Handler
}
