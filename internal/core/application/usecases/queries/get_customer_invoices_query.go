package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetCustomerInvoicesQueryIsNotConstructed = errors.New(
	"GetCustomerInvoicesQuery must be created via NewGetCustomerInvoicesQuery constructor",
)

// GetCustomerInvoicesQuery retrieves the invoices on the authenticated
// customer's bookings, newest first.
type GetCustomerInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomerInvoicesQuery creates a query for the caller's invoices.
func NewGetCustomerInvoicesQuery() GetCustomerInvoicesQuery {
	return GetCustomerInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerInvoicesQueryIsNotConstructed)
}

// InvoiceSummaryResponse is one row of an invoice listing.
type InvoiceSummaryResponse struct {
	InvoiceID  kernel.UUID
	BookingID  kernel.UUID
	TrackingID string
	Amount     float64
	Status     string
	IssuedAt   time.Time
	PaidAt     *time.Time
}
