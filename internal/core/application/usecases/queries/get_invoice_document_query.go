package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrGetInvoiceDocumentQueryIsNotConstructed = errors.New(
	"GetInvoiceDocumentQuery must be created via NewGetInvoiceDocumentQuery constructor",
)

// GetInvoiceDocumentQuery retrieves the printable view of one invoice:
// the billed amount together with the shipment and customer it refers to.
type GetInvoiceDocumentQuery struct {
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceDocumentQuery creates a query for one invoice document.
func NewGetInvoiceDocumentQuery(invoiceID kernel.UUID) (GetInvoiceDocumentQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceDocumentQuery{}, err
	}
	return GetInvoiceDocumentQuery{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceDocumentQueryIsNotConstructed)
}

// InvoiceID returns the invoice to render.
func (q GetInvoiceDocumentQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

// InvoiceDocumentResponse is the printable invoice projection.
type InvoiceDocumentResponse struct {
	InvoiceID        kernel.UUID
	TrackingID       string
	CustomerName     string
	CustomerContact  string
	SenderName       string
	RecipientName    string
	RecipientAddress string
	CargoDescription string
	Amount           float64
	Status           string
	IssuedAt         time.Time
	PaidAt           *time.Time
}
