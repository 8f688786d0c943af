// Package http exposes the application's use cases over a REST API.
// Handlers translate requests into commands and queries, hand them to the
// application layer together with the authenticated principal, and render
// the outcome as JSON. Authorization decisions live in the application
// layer; this package only authenticates.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	RegisterAccount  commands.RegisterAccountCommandHandler
	Authenticate     commands.AuthenticateCommandHandler
	RegisterEmployee commands.RegisterEmployeeCommandHandler
	SetAccountStatus commands.SetAccountStatusCommandHandler
	UpdateContact    commands.UpdateAccountContactCommandHandler
	CreateBooking    commands.CreateBookingCommandHandler
	AppendEvent      commands.AppendTrackingEventCommandHandler
	AssignEmployee   commands.AssignEmployeeCommandHandler
	OverrideStatus   commands.OverrideBookingStatusCommandHandler
	CreateInvoice    commands.CreateInvoiceCommandHandler
	MarkInvoicePaid  commands.MarkInvoicePaidCommandHandler
	OpenTicket       commands.OpenTicketCommandHandler
	CloseTicket      commands.CloseTicketCommandHandler

	// Query handlers
	TrackShipment     queries.TrackShipmentQueryHandler
	CustomerBookings  queries.GetCustomerBookingsQueryHandler
	AssignedShipments queries.GetAssignedShipmentsQueryHandler
	AllBookings       queries.GetAllBookingsQueryHandler
	CustomerInvoices  queries.GetCustomerInvoicesQueryHandler
	InvoiceDocument   queries.GetInvoiceDocumentQueryHandler
	ListAccounts      queries.ListAccountsQueryHandler
	ListTickets       queries.ListTicketsQueryHandler
	DashboardStats    queries.GetDashboardStatsQueryHandler
	OverdueShipments  queries.GetOverdueShipmentsQueryHandler
	ExportReport      queries.ExportReportQueryHandler
}

// Server handles HTTP requests by coordinating between the transport layer
// and the application use cases.
type Server struct {
	handlers Handlers
	tokens   *TokenIssuer
}

// NewServer creates a new HTTP server from the use case handlers and the
// token issuer used for login sessions.
func NewServer(handlers Handlers, tokens *TokenIssuer) *Server {
	return &Server{handlers: handlers, tokens: tokens}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/accounts", s.RegisterAccount)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", AuthMiddleware(s.tokens))
	authed.PUT("/accounts/contact", s.UpdateContact)

	authed.POST("/bookings", s.CreateBooking)
	authed.GET("/bookings", s.GetCustomerBookings)
	authed.GET("/tracking/:trackingID", s.TrackShipment)

	authed.GET("/shipments/assigned", s.GetAssignedShipments)
	authed.GET("/shipments/overdue", s.GetOverdueShipments)
	authed.POST("/shipments/:bookingID/events", s.AppendTrackingEvent)

	authed.GET("/invoices", s.GetCustomerInvoices)
	authed.GET("/invoices/:invoiceID", s.GetInvoiceDocument)
	authed.POST("/invoices/:invoiceID/pay", s.PayInvoice)

	authed.POST("/tickets", s.OpenTicket)

	admin := authed.Group("/admin")
	admin.POST("/employees", s.RegisterEmployee)
	admin.GET("/accounts", s.ListAccounts)
	admin.PUT("/accounts/:accountID/status", s.SetAccountStatus)
	admin.GET("/bookings", s.GetAllBookings)
	admin.PUT("/bookings/:bookingID/assignee", s.AssignEmployee)
	admin.PUT("/bookings/:bookingID/status", s.OverrideBookingStatus)
	admin.POST("/invoices", s.CreateInvoice)
	admin.GET("/tickets", s.ListTickets)
	admin.PUT("/tickets/:ticketID/close", s.CloseTicket)
	admin.GET("/dashboard", s.GetDashboard)
	admin.GET("/reports/:kind", s.ExportReport)
}
