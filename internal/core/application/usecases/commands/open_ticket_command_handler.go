package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/core/domain/services"
)

// OpenTicketCommandHandler handles support ticket creation. Any
// authenticated account may raise a ticket; it is attributed to the caller.
type OpenTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	policy     *services.AccessPolicy
}

// NewOpenTicketCommandHandler creates a handler for ticket creation.
func NewOpenTicketCommandHandler(
	uowFactory TicketUoWFactory, policy *services.AccessPolicy,
) OpenTicketCommandHandler {
	return OpenTicketCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the ticket creation command.
func (h *OpenTicketCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd OpenTicketCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpOpenTicket); err != nil {
		return err
	}

	tk, err := ticket.NewTicket(cmd.TicketID(), principal.AccountID, cmd.Subject(), cmd.Body(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TicketRepository().Add(ctx, tk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
