package ports

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// MarkPaid transitions the invoice to paid as a single conditional
	// update so that concurrent payment attempts resolve to exactly one
	// success. When ownerID is a valid UUID the update additionally
	// requires the referenced booking to belong to that customer.
	// Returns invoice.ErrInvoiceIsNotPending when the row exists but the
	// transition already happened, a not-found error when it does not
	// exist, and an authorization error when it exists but belongs to a
	// different customer.
	MarkPaid(ctx context.Context, id kernel.UUID, ownerID kernel.UUID, paidAt time.Time) error
}
