package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// AssignedShipmentResponse is one entry of an employee's worklist: the
// booking summary plus where the shipment was last seen.
type AssignedShipmentResponse struct {
	BookingSummaryResponse
	CurrentLocation string
}

// GetAssignedShipmentsQueryHandler lists shipments assigned to the calling
// employee.
type GetAssignedShipmentsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetAssignedShipmentsQueryHandler creates a handler for employee worklists.
func NewGetAssignedShipmentsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetAssignedShipmentsQueryHandler {
	return GetAssignedShipmentsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, newest booking first. Each entry carries the
// location of the latest tracking event.
func (h GetAssignedShipmentsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetAssignedShipmentsQuery,
) ([]AssignedShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewAssignedShipments); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			b.id,
			b.tracking_id,
			b.sender_name,
			b.recipient_name,
			b.recipient_address,
			b.status,
			b.total_charge,
			b.booked_at,
			b.expected_delivery,
			COALESCE((
				SELECT te.location
				FROM tracking_events te
				WHERE te.booking_id = b.id
				ORDER BY te.occurred_at DESC, te.seq DESC
				LIMIT 1
			), '') AS current_location
		FROM bookings b
		WHERE b.assigned_employee = ?
	`
	args := []any{principal.AccountID.String()}
	if !query.IncludeClosed() {
		sql += ` AND b.status NOT IN (?, ?)`
		args = append(args, booking.StatusDelivered.String(), booking.StatusCancelled.String())
	}
	sql += ` ORDER BY b.booked_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]AssignedShipmentResponse, 0)
	for rows.Next() {
		var shipment AssignedShipmentResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&shipment.TrackingID,
			&shipment.SenderName,
			&shipment.RecipientName,
			&shipment.RecipientAddress,
			&shipment.Status,
			&shipment.TotalCharge,
			&shipment.BookedAt,
			&shipment.ExpectedDelivery,
			&shipment.CurrentLocation,
		)
		if err != nil {
			return nil, err
		}

		if shipment.BookingID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
