package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
)

type invoiceSummary struct {
	InvoiceID  string     `json:"invoiceId"`
	BookingID  string     `json:"bookingId"`
	TrackingID string     `json:"trackingId"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	IssuedAt   time.Time  `json:"issuedAt"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}

// GetCustomerInvoices handles GET /api/v1/invoices - lists the calling
// customer's invoices, newest first.
func (s *Server) GetCustomerInvoices(c echo.Context) error {
	query := queries.NewGetCustomerInvoicesQuery()

	invoices, err := s.handlers.CustomerInvoices.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	response := make([]invoiceSummary, len(invoices))
	for i, inv := range invoices {
		response[i] = invoiceSummary{
			InvoiceID:  inv.InvoiceID.String(),
			BookingID:  inv.BookingID.String(),
			TrackingID: inv.TrackingID,
			Amount:     inv.Amount,
			Status:     inv.Status,
			IssuedAt:   inv.IssuedAt,
			PaidAt:     inv.PaidAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

type invoiceDocument struct {
	InvoiceID        string     `json:"invoiceId"`
	TrackingID       string     `json:"trackingId"`
	CustomerName     string     `json:"customerName"`
	CustomerContact  string     `json:"customerContact"`
	SenderName       string     `json:"senderName"`
	RecipientName    string     `json:"recipientName"`
	RecipientAddress string     `json:"recipientAddress"`
	CargoDescription string     `json:"cargoDescription"`
	Amount           float64    `json:"amount"`
	Status           string     `json:"status"`
	IssuedAt         time.Time  `json:"issuedAt"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`
}

// GetInvoiceDocument handles GET /api/v1/invoices/:invoiceID - returns the
// printable invoice detail. Customers only see invoices on their own
// bookings.
func (s *Server) GetInvoiceDocument(c echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(c.Param("invoiceID"))
	if err != nil {
		return renderError(c, err)
	}

	query, err := queries.NewGetInvoiceDocumentQuery(invoiceID)
	if err != nil {
		return renderError(c, err)
	}

	doc, err := s.handlers.InvoiceDocument.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, invoiceDocument{
		InvoiceID:        doc.InvoiceID.String(),
		TrackingID:       doc.TrackingID,
		CustomerName:     doc.CustomerName,
		CustomerContact:  doc.CustomerContact,
		SenderName:       doc.SenderName,
		RecipientName:    doc.RecipientName,
		RecipientAddress: doc.RecipientAddress,
		CargoDescription: doc.CargoDescription,
		Amount:           doc.Amount,
		Status:           doc.Status,
		IssuedAt:         doc.IssuedAt,
		PaidAt:           doc.PaidAt,
	})
}

// PayInvoice handles POST /api/v1/invoices/:invoiceID/pay - settles a
// pending invoice.
func (s *Server) PayInvoice(c echo.Context) error {
	invoiceID, err := kernel.UUIDFromString(c.Param("invoiceID"))
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.MarkInvoicePaid.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type createInvoiceRequest struct {
	BookingID string  `json:"bookingId"`
	Amount    float64 `json:"amount"`
}

type createInvoiceResponse struct {
	InvoiceID string `json:"invoiceId"`
}

// CreateInvoice handles POST /api/v1/admin/invoices - issues an invoice
// against a booking.
func (s *Server) CreateInvoice(c echo.Context) error {
	var req createInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	bookingID, err := kernel.UUIDFromString(req.BookingID)
	if err != nil {
		return renderError(c, err)
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(invoiceID, bookingID, req.Amount)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.CreateInvoice.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, createInvoiceResponse{InvoiceID: invoiceID.String()})
}
