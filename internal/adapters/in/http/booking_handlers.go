package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
)

type partyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type createBookingRequest struct {
	Sender           partyRequest `json:"sender"`
	Recipient        partyRequest `json:"recipient"`
	CargoDescription string       `json:"cargoDescription"`
	Weight           float64      `json:"weight"`
	DeclaredValue    float64      `json:"declaredValue"`
}

type createBookingResponse struct {
	BookingID  string `json:"bookingId"`
	TrackingID string `json:"trackingId"`
}

// CreateBooking handles POST /api/v1/bookings - books a new shipment for
// the calling customer.
func (s *Server) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	sender, err := booking.NewParty(req.Sender.Name, req.Sender.Address, req.Sender.Phone)
	if err != nil {
		return renderError(c, err)
	}

	recipient, err := booking.NewParty(req.Recipient.Name, req.Recipient.Address, req.Recipient.Phone)
	if err != nil {
		return renderError(c, err)
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID, sender, recipient, req.CargoDescription, req.Weight, req.DeclaredValue,
	)
	if err != nil {
		return renderError(c, err)
	}

	trackingID, err := s.handlers.CreateBooking.Handle(c.Request().Context(), principalFrom(c), cmd)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, createBookingResponse{
		BookingID:  bookingID.String(),
		TrackingID: trackingID.String(),
	})
}

type bookingSummary struct {
	BookingID        string    `json:"bookingId"`
	TrackingID       string    `json:"trackingId"`
	SenderName       string    `json:"senderName"`
	RecipientName    string    `json:"recipientName"`
	RecipientAddress string    `json:"recipientAddress"`
	Status           string    `json:"status"`
	TotalCharge      float64   `json:"totalCharge"`
	BookedAt         time.Time `json:"bookedAt"`
	ExpectedDelivery time.Time `json:"expectedDelivery"`
}

func summaryOf(b queries.BookingSummaryResponse) bookingSummary {
	return bookingSummary{
		BookingID:        b.BookingID.String(),
		TrackingID:       b.TrackingID,
		SenderName:       b.SenderName,
		RecipientName:    b.RecipientName,
		RecipientAddress: b.RecipientAddress,
		Status:           b.Status,
		TotalCharge:      b.TotalCharge,
		BookedAt:         b.BookedAt,
		ExpectedDelivery: b.ExpectedDelivery,
	}
}

func bookingSummaries(results []queries.BookingSummaryResponse) []bookingSummary {
	response := make([]bookingSummary, len(results))
	for i, b := range results {
		response[i] = summaryOf(b)
	}
	return response
}

// GetCustomerBookings handles GET /api/v1/bookings - lists the calling
// customer's bookings.
func (s *Server) GetCustomerBookings(c echo.Context) error {
	query := queries.NewGetCustomerBookingsQuery()

	bookings, err := s.handlers.CustomerBookings.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, bookingSummaries(bookings))
}

type trackingEventResponse struct {
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type trackShipmentResponse struct {
	BookingID        string                  `json:"bookingId"`
	TrackingID       string                  `json:"trackingId"`
	SenderName       string                  `json:"senderName"`
	RecipientName    string                  `json:"recipientName"`
	RecipientAddress string                  `json:"recipientAddress"`
	Status           string                  `json:"status"`
	BookedAt         time.Time               `json:"bookedAt"`
	ExpectedDelivery time.Time               `json:"expectedDelivery"`
	History          []trackingEventResponse `json:"history"`
}

// TrackShipment handles GET /api/v1/tracking/:trackingID - returns the
// shipment state and its full movement history.
func (s *Server) TrackShipment(c echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(c.Param("trackingID"))
	if err != nil {
		return renderError(c, err)
	}

	query, err := queries.NewTrackShipmentQuery(trackingID)
	if err != nil {
		return renderError(c, err)
	}

	result, err := s.handlers.TrackShipment.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	history := make([]trackingEventResponse, len(result.History))
	for i, e := range result.History {
		history[i] = trackingEventResponse{
			Status:     e.Status,
			Location:   e.Location,
			Note:       e.Note,
			OccurredAt: e.OccurredAt,
		}
	}

	return c.JSON(http.StatusOK, trackShipmentResponse{
		BookingID:        result.BookingID.String(),
		TrackingID:       result.TrackingID,
		SenderName:       result.SenderName,
		RecipientName:    result.RecipientName,
		RecipientAddress: result.RecipientAddress,
		Status:           result.Status,
		BookedAt:         result.BookedAt,
		ExpectedDelivery: result.ExpectedDelivery,
		History:          history,
	})
}

type assignedShipment struct {
	bookingSummary
	CurrentLocation string `json:"currentLocation"`
}

// GetAssignedShipments handles GET /api/v1/shipments/assigned - lists
// shipments assigned to the calling employee with their last known location.
// Closed shipments are included when ?includeClosed=true.
func (s *Server) GetAssignedShipments(c echo.Context) error {
	includeClosed := c.QueryParam("includeClosed") == "true"
	query := queries.NewGetAssignedShipmentsQuery(includeClosed)

	shipments, err := s.handlers.AssignedShipments.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	response := make([]assignedShipment, len(shipments))
	for i, sh := range shipments {
		response[i] = assignedShipment{
			bookingSummary:  summaryOf(sh.BookingSummaryResponse),
			CurrentLocation: sh.CurrentLocation,
		}
	}

	return c.JSON(http.StatusOK, response)
}

type appendEventRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Note     string `json:"note"`
}

// AppendTrackingEvent handles POST /api/v1/shipments/:bookingID/events -
// records a movement event on an assigned shipment.
func (s *Server) AppendTrackingEvent(c echo.Context) error {
	bookingID, err := kernel.UUIDFromString(c.Param("bookingID"))
	if err != nil {
		return renderError(c, err)
	}

	var req appendEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := booking.StatusFromString(req.Status)
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewAppendTrackingEventCommand(bookingID, status, req.Location, req.Note)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.AppendEvent.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// GetAllBookings handles GET /api/v1/admin/bookings?status= - lists every
// booking, optionally filtered by status.
func (s *Server) GetAllBookings(c echo.Context) error {
	query := queries.NewGetAllBookingsQuery()
	if raw := c.QueryParam("status"); raw != "" {
		status, err := booking.StatusFromString(raw)
		if err != nil {
			return renderError(c, err)
		}
		if query, err = queries.NewGetAllBookingsQueryWithStatus(status); err != nil {
			return renderError(c, err)
		}
	}

	bookings, err := s.handlers.AllBookings.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, bookingSummaries(bookings))
}

type assignEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

// AssignEmployee handles PUT /api/v1/admin/bookings/:bookingID/assignee.
func (s *Server) AssignEmployee(c echo.Context) error {
	bookingID, err := kernel.UUIDFromString(c.Param("bookingID"))
	if err != nil {
		return renderError(c, err)
	}

	var req assignEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	employeeID, err := kernel.UUIDFromString(req.EmployeeID)
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewAssignEmployeeCommand(bookingID, employeeID)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.AssignEmployee.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type overrideStatusRequest struct {
	Status string `json:"status"`
}

// OverrideBookingStatus handles PUT /api/v1/admin/bookings/:bookingID/status -
// administrative status correction, allowed even on closed shipments.
func (s *Server) OverrideBookingStatus(c echo.Context) error {
	bookingID, err := kernel.UUIDFromString(c.Param("bookingID"))
	if err != nil {
		return renderError(c, err)
	}

	var req overrideStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := booking.StatusFromString(req.Status)
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewOverrideBookingStatusCommand(bookingID, status)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.OverrideStatus.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type overdueShipmentResponse struct {
	BookingID        string    `json:"bookingId"`
	TrackingID       string    `json:"trackingId"`
	Status           string    `json:"status"`
	ExpectedDelivery time.Time `json:"expectedDelivery"`
	OverdueHours     float64   `json:"overdueHours"`
	AssignedEmployee string    `json:"assignedEmployee,omitempty"`
}

// GetOverdueShipments handles GET /api/v1/shipments/overdue - lists open
// shipments past their delivery estimate.
func (s *Server) GetOverdueShipments(c echo.Context) error {
	query, err := queries.NewGetOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		return renderError(c, err)
	}

	shipments, err := s.handlers.OverdueShipments.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	response := make([]overdueShipmentResponse, len(shipments))
	for i, o := range shipments {
		assigned := ""
		if o.AssignedEmployee != nil {
			assigned = o.AssignedEmployee.String()
		}
		response[i] = overdueShipmentResponse{
			BookingID:        o.BookingID.String(),
			TrackingID:       o.TrackingID,
			Status:           o.Status,
			ExpectedDelivery: o.ExpectedDelivery,
			OverdueHours:     o.Overdue.Hours(),
			AssignedEmployee: assigned,
		}
	}

	return c.JSON(http.StatusOK, response)
}
