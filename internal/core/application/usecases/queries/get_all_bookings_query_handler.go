package queries

import (
	"context"

	"gorm.io/gorm"

	"cargo/internal/core/domain/services"
)

// GetAllBookingsQueryHandler lists every booking for administrators.
type GetAllBookingsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetAllBookingsQueryHandler creates a handler for the full booking listing.
func NewGetAllBookingsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetAllBookingsQueryHandler {
	return GetAllBookingsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, newest booking first.
func (h GetAllBookingsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetAllBookingsQuery,
) ([]BookingSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewAllBookings); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			tracking_id,
			sender_name,
			recipient_name,
			recipient_address,
			status,
			total_charge,
			booked_at,
			expected_delivery
		FROM bookings
	`
	var args []any
	if status, ok := query.Status(); ok {
		sql += ` WHERE status = ?`
		args = append(args, status.String())
	}
	sql += ` ORDER BY booked_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookingSummaries(rows)
}
