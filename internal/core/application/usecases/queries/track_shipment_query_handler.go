package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// TrackShipmentQueryHandler resolves a tracking identifier to the shipment
// view. Customers can only track their own shipments; employees and
// administrators can track any.
type TrackShipmentQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewTrackShipmentQueryHandler creates a handler for shipment tracking lookups.
func NewTrackShipmentQueryHandler(db *gorm.DB, policy *services.AccessPolicy) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db, policy: policy}
}

// Handle executes the lookup. An unknown tracking identifier and a shipment
// belonging to another customer both come back as not found. History is
// returned newest event first.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	if err := h.policy.Authorize(principal, services.OpTrackShipment); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			tracking_id,
			sender_name,
			recipient_name,
			recipient_address,
			status,
			booked_at,
			expected_delivery
		FROM bookings
		WHERE tracking_id = ?
	`
	args := []any{query.TrackingID().String()}
	if principal.Role == account.RoleCustomer {
		sql += ` AND customer_id = ?`
		args = append(args, principal.AccountID.String())
	}

	var resp TrackShipmentQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(sql, args...).Row()
	err := row.Scan(
		&id,
		&resp.TrackingID,
		&resp.SenderName,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.Status,
		&resp.BookedAt,
		&resp.ExpectedDelivery,
	)
	if err != nil {
		return TrackShipmentQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"trackingID", query.TrackingID().String(), err)
	}

	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	resp.BookingID = bookingID

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			location,
			note,
			occurred_at
		FROM tracking_events
		WHERE booking_id = ?
		ORDER BY occurred_at DESC, seq DESC
	`, bookingID.String()).Rows()
	if err != nil {
		return TrackShipmentQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var event TrackingEventResponse
		if err = rows.Scan(&event.Status, &event.Location, &event.Note, &event.OccurredAt); err != nil {
			return TrackShipmentQueryResponse{}, err
		}
		resp.History = append(resp.History, event)
	}
	if err = rows.Err(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	return resp, nil
}
