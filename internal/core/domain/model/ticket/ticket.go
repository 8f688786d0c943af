// Package ticket contains the support ticket aggregate. Any authenticated
// account may open a ticket; administrators close them.
package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket instance was not
	// created through NewTicket or RestoreTicket.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket or RestoreTicket")

	// ErrTicketIsClosed is returned when closing an already closed ticket.
	ErrTicketIsClosed = errors.New("ticket is already closed")
)

// Status represents the lifecycle state of a support ticket.
type Status int

const (
	StatusUnknown Status = iota
	StatusOpen
	StatusClosed
)

// StatusFromString parses the lowercase status name used in storage.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "open":
		return StatusOpen, nil
	case "closed":
		return StatusClosed, nil
	default:
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid ticket status", s))
	}
}

// Validate checks that the Status is open or closed.
func (s Status) Validate() error {
	if s != StatusOpen && s != StatusClosed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid ticket status", s))
	}
	return nil
}

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Ticket is a support request raised by an account.
type Ticket struct {
	id        kernel.UUID
	accountID kernel.UUID
	subject   string
	body      string
	status    Status
	openedAt  time.Time
	closedAt  *time.Time

	isConstructed bool
}

// NewTicket creates an open ticket for the given account.
func NewTicket(id, accountID kernel.UUID, subject, body string, openedAt time.Time) (*Ticket, error) {
	t := &Ticket{
		status:        StatusOpen,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setAccountID(accountID),
		t.setSubject(subject),
		t.setBody(body),
		t.setOpenedAt(openedAt),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTicket reconstructs a ticket from persisted state.
func RestoreTicket(id, accountID kernel.UUID, subject, body string, status Status, openedAt time.Time, closedAt *time.Time) (*Ticket, error) {
	t, err := NewTicket(id, accountID, subject, body, openedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	if (status == StatusClosed) != (closedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("closedAt",
			fmt.Errorf("closed timestamp must be set if and only if status is closed, got status %s", status))
	}

	t.status = status
	t.closedAt = closedAt
	return t, nil
}

// Validate ensures the Ticket was constructed through a factory function.
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}
	return nil
}

// IsEqual compares two tickets by identifier.
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// AccountID returns the identifier of the account that opened the ticket.
func (t *Ticket) AccountID() kernel.UUID {
	return t.accountID
}

// Subject returns the short summary line.
func (t *Ticket) Subject() string {
	return t.subject
}

// Body returns the free-form description.
func (t *Ticket) Body() string {
	return t.body
}

// Status returns the lifecycle state.
func (t *Ticket) Status() Status {
	return t.status
}

// OpenedAt returns when the ticket was created.
func (t *Ticket) OpenedAt() time.Time {
	return t.openedAt
}

// ClosedAt returns when the ticket was closed, nil while open.
func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

// Close transitions the ticket from open to closed at the given time.
func (t *Ticket) Close(at time.Time) error {
	if t.status == StatusClosed {
		return ErrTicketIsClosed
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("closedAt")
	}

	t.status = StatusClosed
	t.closedAt = &at
	return nil
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.accountID = id
	return nil
}

func (t *Ticket) setSubject(subject string) error {
	if strings.TrimSpace(subject) == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	t.subject = subject
	return nil
}

func (t *Ticket) setBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return errs.NewValueIsRequiredError("body")
	}
	t.body = body
	return nil
}

func (t *Ticket) setOpenedAt(openedAt time.Time) error {
	if openedAt.IsZero() {
		return errs.NewValueIsRequiredError("openedAt")
	}
	t.openedAt = openedAt
	return nil
}
