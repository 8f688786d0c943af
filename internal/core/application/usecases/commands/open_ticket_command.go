package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrOpenTicketCommandIsNotConstructed = errors.New(
	"OpenTicketCommand must be created via NewOpenTicketCommand constructor",
)

// OpenTicketCommand represents an account holder raising a support ticket.
type OpenTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	subject  string
	body     string

	guard guard.ConstructorGuard
}

// NewOpenTicketCommand creates a command to open a support ticket.
func NewOpenTicketCommand(ticketID kernel.UUID, subject, body string) (OpenTicketCommand, error) {
	cmd := OpenTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setSubject(subject),
		cmd.setBody(body),
	); err != nil {
		return OpenTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenTicketCommand) Validate() error {
	return c.guard.Validate(ErrOpenTicketCommandIsNotConstructed)
}

// TicketID returns the identifier for the new ticket.
func (c OpenTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// Subject returns the short summary line.
func (c OpenTicketCommand) Subject() string {
	return c.subject
}

// Body returns the free-form description.
func (c OpenTicketCommand) Body() string {
	return c.body
}

func (c *OpenTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *OpenTicketCommand) setSubject(subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	c.subject = subject
	return nil
}

func (c *OpenTicketCommand) setBody(body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	c.body = body
	return nil
}
