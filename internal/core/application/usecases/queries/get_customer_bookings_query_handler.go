package queries

import (
	"context"

	"gorm.io/gorm"

	"cargo/internal/core/domain/services"
)

// GetCustomerBookingsQueryHandler lists the caller's own bookings.
type GetCustomerBookingsQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetCustomerBookingsQueryHandler creates a handler for customer booking listings.
func NewGetCustomerBookingsQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetCustomerBookingsQueryHandler {
	return GetCustomerBookingsQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, newest booking first.
func (h GetCustomerBookingsQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetCustomerBookingsQuery,
) ([]BookingSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewOwnBookings); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE customer_id = ?
		ORDER BY booked_at DESC
	`, principal.AccountID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookingSummaries(rows)
}
