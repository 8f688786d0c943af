// Package invoice contains the financial side of the cargo domain model.
//
// An Invoice is a billable record tied to a booking and tracked to payment
// independently of the shipment's progress. Several invoices may reference
// one booking (amendments, surcharges). The only lifecycle transition is
// pending to paid, performed by the owning customer or an administrator;
// the paid timestamp is set exactly when the transition happens and the
// transition is never reversed.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")

	// ErrInvoiceIsNotPending is returned when marking a non-pending invoice
	// paid. The caller distinguishes this from not-found: the invoice exists
	// but the transition already happened.
	ErrInvoiceIsNotPending = errors.New("invoice is not pending")
)

// Status represents the payment state of an invoice.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the invoice awaits payment.
	StatusPending

	// StatusPaid is the final state; the paid timestamp is set.
	StatusPaid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusPaid:    "paid",
	}
}

// StatusFromString parses the lowercase status name used in storage.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "paid":
		return StatusPaid, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid invoice status", s))
	}
}

// Validate checks that the Status is pending or paid.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusPaid {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// String returns the lowercase status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Invoice is a billable record referencing a booking.
//
// Invoice maintains these invariants:
//   - Amount is strictly positive
//   - The paid timestamp is nil exactly while the status is pending
//   - The only transition is pending to paid; paid is final
type Invoice struct {
	id        kernel.UUID
	bookingID kernel.UUID
	amount    float64
	status    Status
	issuedAt  time.Time
	paidAt    *time.Time

	isConstructed bool
}

// NewInvoice creates a pending invoice for the given booking.
func NewInvoice(id, bookingID kernel.UUID, amount float64, issuedAt time.Time) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setBookingID(bookingID),
		inv.setAmount(amount),
		inv.setIssuedAt(issuedAt),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persisted state. The paid
// timestamp must be present exactly when the status is paid.
func RestoreInvoice(id, bookingID kernel.UUID, amount float64, status Status, issuedAt time.Time, paidAt *time.Time) (*Invoice, error) {
	inv, err := NewInvoice(id, bookingID, amount, issuedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if (status == StatusPaid) != (paidAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("paidAt",
			fmt.Errorf("paid timestamp must be set if and only if status is paid, got status %s", status))
	}

	inv.status = status
	inv.paidAt = paidAt
	return inv, nil
}

// Validate ensures the Invoice was constructed through a factory function.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by identifier.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// BookingID returns the referenced booking's identifier.
func (i *Invoice) BookingID() kernel.UUID {
	return i.bookingID
}

// Amount returns the billed amount.
func (i *Invoice) Amount() float64 {
	return i.amount
}

// Status returns the payment state.
func (i *Invoice) Status() Status {
	return i.status
}

// IssuedAt returns when the invoice was created.
func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

// PaidAt returns the payment timestamp, nil while pending.
func (i *Invoice) PaidAt() *time.Time {
	return i.paidAt
}

// MarkPaid transitions the invoice from pending to paid at the given time.
// Returns ErrInvoiceIsNotPending when the transition already happened.
//
// Under concurrency this in-memory transition is not the last word: the
// storage adapter performs the same check as a single conditional update,
// so two simultaneous payment attempts resolve to exactly one success.
func (i *Invoice) MarkPaid(at time.Time) error {
	if i.status != StatusPending {
		return ErrInvoiceIsNotPending
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}

	i.status = StatusPaid
	i.paidAt = &at
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.bookingID = id
	return nil
}

func (i *Invoice) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%f is not greater than 0", amount))
	}
	i.amount = amount
	return nil
}

func (i *Invoice) setIssuedAt(issuedAt time.Time) error {
	if issuedAt.IsZero() {
		return errs.NewValueIsRequiredError("issuedAt")
	}
	i.issuedAt = issuedAt
	return nil
}
