package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrMarkInvoicePaidCommandIsNotConstructed = errors.New(
	"MarkInvoicePaidCommand must be created via NewMarkInvoicePaidCommand constructor",
)

// MarkInvoicePaidCommand represents a payment settling an invoice.
// Customers may settle invoices on their own bookings; administrators may
// settle any invoice.
type MarkInvoicePaidCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkInvoicePaidCommand creates a command to settle an invoice.
func NewMarkInvoicePaidCommand(invoiceID kernel.UUID) (MarkInvoicePaidCommand, error) {
	cmd := MarkInvoicePaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInvoiceID(invoiceID); err != nil {
		return MarkInvoicePaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInvoicePaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkInvoicePaidCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to settle.
func (c MarkInvoicePaidCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c *MarkInvoicePaidCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}
