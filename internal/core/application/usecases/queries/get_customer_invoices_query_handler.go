package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// GetCustomerInvoicesQueryHandler lists invoices on the caller's bookings.
type GetCustomerInvoicesQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetCustomerInvoicesQueryHandler creates a handler for customer invoice listings.
func NewGetCustomerInvoicesQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetCustomerInvoicesQueryHandler {
	return GetCustomerInvoicesQueryHandler{db: db, policy: policy}
}

// Handle executes the listing, newest invoice first.
func (h GetCustomerInvoicesQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetCustomerInvoicesQuery,
) ([]InvoiceSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(principal, services.OpViewOwnInvoices); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.booking_id,
			b.tracking_id,
			i.amount,
			i.status,
			i.issued_at,
			i.paid_at
		FROM invoices i
		JOIN bookings b ON b.id = i.booking_id
		WHERE b.customer_id = ?
		ORDER BY i.issued_at DESC
	`, principal.AccountID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]InvoiceSummaryResponse, 0)
	for rows.Next() {
		var summary InvoiceSummaryResponse
		var invoiceID, bookingID uuid.UUID

		err = rows.Scan(
			&invoiceID,
			&bookingID,
			&summary.TrackingID,
			&summary.Amount,
			&summary.Status,
			&summary.IssuedAt,
			&summary.PaidAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.InvoiceID, err = kernel.UUIDFromBytes(invoiceID[:]); err != nil {
			return nil, err
		}
		if summary.BookingID, err = kernel.UUIDFromBytes(bookingID[:]); err != nil {
			return nil, err
		}
		invoices = append(invoices, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
