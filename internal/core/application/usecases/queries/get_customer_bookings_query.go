package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetCustomerBookingsQueryIsNotConstructed = errors.New(
	"GetCustomerBookingsQuery must be created via NewGetCustomerBookingsQuery constructor",
)

// GetCustomerBookingsQuery retrieves the authenticated customer's bookings,
// newest first.
type GetCustomerBookingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomerBookingsQuery creates a query for the caller's own bookings.
func NewGetCustomerBookingsQuery() GetCustomerBookingsQuery {
	return GetCustomerBookingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerBookingsQueryIsNotConstructed)
}

// BookingSummaryResponse is one row of a booking listing.
type BookingSummaryResponse struct {
	BookingID        kernel.UUID
	TrackingID       string
	SenderName       string
	RecipientName    string
	RecipientAddress string
	Status           string
	TotalCharge      float64
	BookedAt         time.Time
	ExpectedDelivery time.Time
}
