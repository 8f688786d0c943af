package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ticket"
)

type openTicketRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type openTicketResponse struct {
	TicketID string `json:"ticketId"`
}

// OpenTicket handles POST /api/v1/tickets - opens a support ticket for the
// calling account.
func (s *Server) OpenTicket(c echo.Context) error {
	var req openTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	ticketID := kernel.NewUUID()
	cmd, err := commands.NewOpenTicketCommand(ticketID, req.Subject, req.Body)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.OpenTicket.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusCreated, openTicketResponse{TicketID: ticketID.String()})
}

type ticketSummary struct {
	TicketID string     `json:"ticketId"`
	Handle   string     `json:"handle"`
	Subject  string     `json:"subject"`
	Status   string     `json:"status"`
	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`
}

// ListTickets handles GET /api/v1/admin/tickets?status= - lists support
// tickets for the back office.
func (s *Server) ListTickets(c echo.Context) error {
	query := queries.NewListTicketsQuery()
	if raw := c.QueryParam("status"); raw != "" {
		status, err := ticket.StatusFromString(raw)
		if err != nil {
			return renderError(c, err)
		}
		if query, err = queries.NewListTicketsQueryWithStatus(status); err != nil {
			return renderError(c, err)
		}
	}

	tickets, err := s.handlers.ListTickets.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	response := make([]ticketSummary, len(tickets))
	for i, t := range tickets {
		response[i] = ticketSummary{
			TicketID: t.TicketID.String(),
			Handle:   t.Handle,
			Subject:  t.Subject,
			Status:   t.Status,
			OpenedAt: t.OpenedAt,
			ClosedAt: t.ClosedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CloseTicket handles PUT /api/v1/admin/tickets/:ticketID/close.
func (s *Server) CloseTicket(c echo.Context) error {
	ticketID, err := kernel.UUIDFromString(c.Param("ticketID"))
	if err != nil {
		return renderError(c, err)
	}

	cmd, err := commands.NewCloseTicketCommand(ticketID)
	if err != nil {
		return renderError(c, err)
	}

	if err := s.handlers.CloseTicket.Handle(c.Request().Context(), principalFrom(c), cmd); err != nil {
		return renderError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type dashboardResponse struct {
	TotalBookings    int64   `json:"totalBookings"`
	ActiveShipments  int64   `json:"activeShipments"`
	DeliveredCount   int64   `json:"deliveredCount"`
	CancelledCount   int64   `json:"cancelledCount"`
	CustomerCount    int64   `json:"customerCount"`
	EmployeeCount    int64   `json:"employeeCount"`
	PendingInvoices  int64   `json:"pendingInvoices"`
	CollectedRevenue float64 `json:"collectedRevenue"`
	OpenTickets      int64   `json:"openTickets"`
}

// GetDashboard handles GET /api/v1/admin/dashboard - returns the operations
// overview counters.
func (s *Server) GetDashboard(c echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.handlers.DashboardStats.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		TotalBookings:    stats.TotalBookings,
		ActiveShipments:  stats.ActiveShipments,
		DeliveredCount:   stats.DeliveredCount,
		CancelledCount:   stats.CancelledCount,
		CustomerCount:    stats.CustomerCount,
		EmployeeCount:    stats.EmployeeCount,
		PendingInvoices:  stats.PendingInvoices,
		CollectedRevenue: stats.CollectedRevenue,
		OpenTickets:      stats.OpenTickets,
	})
}

// ExportReport handles GET /api/v1/admin/reports/:kind?from=&to= - renders
// a report over a booking date range as a CSV download. Dates are
// YYYY-MM-DD; the range is half-open.
func (s *Server) ExportReport(c echo.Context) error {
	kind, err := queries.ReportKindFromString(c.Param("kind"))
	if err != nil {
		return renderError(c, err)
	}

	from, err := time.Parse("2006-01-02", c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "from must be a YYYY-MM-DD date",
		})
	}

	to, err := time.Parse("2006-01-02", c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "to must be a YYYY-MM-DD date",
		})
	}

	query, err := queries.NewExportReportQuery(kind, from, to)
	if err != nil {
		return renderError(c, err)
	}

	report, err := s.handlers.ExportReport.Handle(c.Request().Context(), principalFrom(c), query)
	if err != nil {
		return renderError(c, err)
	}

	filename := fmt.Sprintf("%s-report_%s_%s.csv",
		report.Kind, from.Format("2006-01-02"), to.Format("2006-01-02"))

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(c.Response())
	if err := writer.Write(report.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(report.Rows); err != nil {
		return err
	}
	writer.Flush()

	return writer.Error()
}
