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

// GetInvoiceDocumentQueryHandler renders the printable invoice view.
// Customers can only fetch invoices on their own bookings.
type GetInvoiceDocumentQueryHandler struct {
	db     *gorm.DB
	policy *services.AccessPolicy
}

// NewGetInvoiceDocumentQueryHandler creates a handler for invoice documents.
func NewGetInvoiceDocumentQueryHandler(db *gorm.DB, policy *services.AccessPolicy) GetInvoiceDocumentQueryHandler {
	return GetInvoiceDocumentQueryHandler{db: db, policy: policy}
}

// Handle executes the lookup. An invoice on another customer's booking
// comes back as not found.
func (h GetInvoiceDocumentQueryHandler) Handle(
	ctx context.Context, principal *services.Principal, query GetInvoiceDocumentQuery,
) (InvoiceDocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceDocumentResponse{}, err
	}

	op := services.OpViewAllInvoices
	if principal != nil && principal.Role == account.RoleCustomer {
		op = services.OpViewOwnInvoices
	}
	if err := h.policy.Authorize(principal, op); err != nil {
		return InvoiceDocumentResponse{}, err
	}

	sql := `
		SELECT
			i.id,
			b.tracking_id,
			a.full_name,
			a.contact,
			b.sender_name,
			b.recipient_name,
			b.recipient_address,
			b.cargo_description,
			i.amount,
			i.status,
			i.issued_at,
			i.paid_at
		FROM invoices i
		JOIN bookings b ON b.id = i.booking_id
		JOIN accounts a ON a.id = b.customer_id
		WHERE i.id = ?
	`
	args := []any{query.InvoiceID().String()}
	if principal.Role == account.RoleCustomer {
		sql += ` AND b.customer_id = ?`
		args = append(args, principal.AccountID.String())
	}

	var resp InvoiceDocumentResponse
	var invoiceID uuid.UUID

	row := h.db.WithContext(ctx).Raw(sql, args...).Row()
	err := row.Scan(
		&invoiceID,
		&resp.TrackingID,
		&resp.CustomerName,
		&resp.CustomerContact,
		&resp.SenderName,
		&resp.RecipientName,
		&resp.RecipientAddress,
		&resp.CargoDescription,
		&resp.Amount,
		&resp.Status,
		&resp.IssuedAt,
		&resp.PaidAt,
	)
	if err != nil {
		return InvoiceDocumentResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"invoiceID", query.InvoiceID(), err)
	}

	if resp.InvoiceID, err = kernel.UUIDFromBytes(invoiceID[:]); err != nil {
		return InvoiceDocumentResponse{}, err
	}

	return resp, nil
}
