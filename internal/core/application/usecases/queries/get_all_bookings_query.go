package queries

import (
	"errors"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/pkg/guard"
)

var ErrGetAllBookingsQueryIsNotConstructed = errors.New(
	"GetAllBookingsQuery must be created via NewGetAllBookingsQuery constructor",
)

// GetAllBookingsQuery retrieves every booking in the system, optionally
// restricted to one status. Administrator only.
type GetAllBookingsQuery struct {
	status    booking.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetAllBookingsQuery creates a query for the full booking listing.
func NewGetAllBookingsQuery() GetAllBookingsQuery {
	return GetAllBookingsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllBookingsQueryWithStatus creates a query restricted to one status.
func NewGetAllBookingsQueryWithStatus(status booking.Status) (GetAllBookingsQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAllBookingsQuery{}, err
	}
	return GetAllBookingsQuery{
		status:    status,
		hasStatus: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetAllBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllBookingsQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q GetAllBookingsQuery) Status() (booking.Status, bool) {
	return q.status, q.hasStatus
}
