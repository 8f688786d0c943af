package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// GetOverdueShipmentsQueryHandler lists shipments past their delivery
// estimate. Used by the overdue sweep job and the administrator views.
type GetOverdueShipmentsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue listings.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, most overdue first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetOverdueShipmentsQuery,
) ([]OverdueShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewOverdue); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			status,
			expected_delivery,
			assigned_employee
		FROM bookings
		WHERE expected_delivery < ?
		  AND status NOT IN (?, ?)
		ORDER BY expected_delivery
	`, query.AsOf(), booking.StatusDelivered.String(), booking.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]OverdueShipmentResponse, 0)
	for rows.Next() {
		var shipment OverdueShipmentResponse
		var id uuid.UUID
		var assigned *uuid.UUID

		err = rows.Scan(&id, &shipment.TrackingID, &shipment.Status, &shipment.ExpectedDelivery, &assigned)
		if err != nil {
			return nil, err
		}

		if shipment.BookingID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if assigned != nil {
			employeeID, idErr := kernel.UUIDFromBytes(assigned[:])
			if idErr != nil {
				return nil, idErr
			}
			shipment.AssignedEmployee = &employeeID
		}
		shipment.Overdue = query.AsOf().Sub(shipment.ExpectedDelivery)
		shipments = append(shipments, shipment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
