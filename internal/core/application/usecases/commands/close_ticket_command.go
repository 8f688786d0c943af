package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrCloseTicketCommandIsNotConstructed = errors.New(
	"CloseTicketCommand must be created via NewCloseTicketCommand constructor",
)

// CloseTicketCommand represents an administrator resolving a support ticket.
type CloseTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseTicketCommand creates a command to close a support ticket.
func NewCloseTicketCommand(ticketID kernel.UUID) (CloseTicketCommand, error) {
	cmd := CloseTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTicketID(ticketID); err != nil {
		return CloseTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseTicketCommand) Validate() error {
	return c.guard.Validate(ErrCloseTicketCommandIsNotConstructed)
}

// TicketID returns the identifier of the ticket to close.
func (c CloseTicketCommand) TicketID() kernel.UUID {
	return c.ticketID
}

func (c *CloseTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}
