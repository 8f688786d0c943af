package queries

import (
	"context"

	"gorm.io/gorm"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/core/domain/services"
)

// GetDashboardStatsQueryHandler computes the administrator dashboard counters.
type GetDashboardStatsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetDashboardStatsQueryHandler creates a handler for the dashboard counters.
func NewGetDashboardStatsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db, policy: policy}
}

// Handle executes the counter queries. Revenue counts paid invoices only.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if err := h.policy.Authorize(principal, services.OpViewDashboard); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var resp GetDashboardStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status NOT IN (?, ?)),
			(SELECT COUNT(*) FROM bookings WHERE status = ?),
			(SELECT COUNT(*) FROM bookings WHERE status = ?),
			(SELECT COUNT(*) FROM accounts WHERE role = ?),
			(SELECT COUNT(*) FROM accounts WHERE role = ?),
			(SELECT COUNT(*) FROM invoices WHERE status = ?),
			(SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = ?),
			(SELECT COUNT(*) FROM tickets WHERE status = ?)
	`,
		booking.StatusDelivered.String(), booking.StatusCancelled.String(),
		booking.StatusDelivered.String(),
		booking.StatusCancelled.String(),
		account.RoleCustomer.String(),
		account.RoleEmployee.String(),
		invoice.StatusPending.String(),
		invoice.StatusPaid.String(),
		ticket.StatusOpen.String(),
	).Row()

	err := row.Scan(
		&resp.TotalBookings,
		&resp.ActiveShipments,
		&resp.DeliveredCount,
		&resp.CancelledCount,
		&resp.CustomerCount,
		&resp.EmployeeCount,
		&resp.PendingInvoices,
		&resp.CollectedRevenue,
		&resp.OpenTickets,
	)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
