package queries

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the administrator dashboard counters.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard counters.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse aggregates system-wide counters for the
// administrator dashboard.
type GetDashboardStatsQueryResponse struct {
	TotalBookings    int64
	ActiveShipments  int64
	DeliveredCount   int64
	CancelledCount   int64
	CustomerCount    int64
	EmployeeCount    int64
	PendingInvoices  int64
	CollectedRevenue float64
	OpenTickets      int64
}
