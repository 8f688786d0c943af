package queries

import (
	"errors"

	"cargo/internal/pkg/guard"
)

var ErrGetAssignedShipmentsQueryIsNotConstructed = errors.New(
	"GetAssignedShipmentsQuery must be created via NewGetAssignedShipmentsQuery constructor",
)

// GetAssignedShipmentsQuery retrieves the shipments currently in the
// authenticated employee's care that are still moving.
type GetAssignedShipmentsQuery struct {
	includeClosed bool

	guard guard.ConstructorGuard
}

// NewGetAssignedShipmentsQuery creates a query for the caller's assigned
// shipments. Delivered and cancelled shipments are included only when
// includeClosed is set.
func NewGetAssignedShipmentsQuery(includeClosed bool) GetAssignedShipmentsQuery {
	return GetAssignedShipmentsQuery{
		includeClosed: includeClosed,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedShipmentsQueryIsNotConstructed)
}

// IncludeClosed reports whether delivered and cancelled shipments are included.
func (q GetAssignedShipmentsQuery) IncludeClosed() bool {
	return q.includeClosed
}
