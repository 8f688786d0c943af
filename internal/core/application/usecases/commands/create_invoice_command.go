package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents an administrator issuing an invoice for a
// booking. A booking may accumulate several invoices.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	bookingID kernel.UUID
	amount    float64

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to issue an invoice.
func NewCreateInvoiceCommand(invoiceID, bookingID kernel.UUID, amount float64) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceID(invoiceID),
		cmd.setBookingID(bookingID),
		cmd.setAmount(amount),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier for the new invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// BookingID returns the identifier of the booking being billed.
func (c CreateInvoiceCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Amount returns the billed amount.
func (c CreateInvoiceCommand) Amount() float64 {
	return c.amount
}

func (c *CreateInvoiceCommand) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	c.invoiceID = invoiceID
	return nil
}

func (c *CreateInvoiceCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateInvoiceCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
