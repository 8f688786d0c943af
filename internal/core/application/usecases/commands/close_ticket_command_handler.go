package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/services"
)

// CloseTicketCommandHandler handles administrators resolving support tickets.
type CloseTicketCommandHandler struct {
	uowFactory TicketUoWFactory
	policy     *services.AccessPolicy
}

// NewCloseTicketCommandHandler creates a handler for ticket resolution.
func NewCloseTicketCommandHandler(
	uowFactory TicketUoWFactory, policy *services.AccessPolicy,
) CloseTicketCommandHandler {
	return CloseTicketCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the resolution command.
func (h *CloseTicketCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd CloseTicketCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpCloseTicket); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticketRepo := uow.TicketRepository()
	tk, err := ticketRepo.Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	if err = tk.Close(time.Now().UTC()); err != nil {
		return err
	}

	if err = ticketRepo.Update(ctx, tk); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
