package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
	"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
)

// GetOverdueShipmentsQuery retrieves shipments that are past their expected
// delivery estimate and still moving.
type GetOverdueShipmentsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query for shipments overdue as of
// the given time.
func NewGetOverdueShipmentsQuery(asOf time.Time) (GetOverdueShipmentsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueShipmentsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetOverdueShipmentsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the reference time for the overdue cutoff.
func (q GetOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

// OverdueShipmentResponse is one overdue shipment with how long it has been
// overdue and who is responsible for it.
type OverdueShipmentResponse struct {
	BookingID        kernel.UUID
	TrackingID       string
	Status           string
	ExpectedDelivery time.Time
	Overdue          time.Duration
	AssignedEmployee *kernel.UUID
}
