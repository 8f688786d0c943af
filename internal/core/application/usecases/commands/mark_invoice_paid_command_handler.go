package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// MarkInvoicePaidCommandHandler handles invoice settlement. The transition
// is a single conditional update in storage, so two racing payment attempts
// resolve to exactly one success.
type MarkInvoicePaidCommandHandler struct {
	uowFactory InvoiceUoWFactory
	policy     *services.AccessPolicy
}

// NewMarkInvoicePaidCommandHandler creates a handler for invoice settlement.
func NewMarkInvoicePaidCommandHandler(
	uowFactory InvoiceUoWFactory, policy *services.AccessPolicy,
) MarkInvoicePaidCommandHandler {
	return MarkInvoicePaidCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the settlement command. A customer paying an invoice on
// another customer's booking is refused with an authorization error, not a
// not-found one.
func (h *MarkInvoicePaidCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd MarkInvoicePaidCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpPayInvoice); err != nil {
		return err
	}

	// Admins settle any invoice. A zero owner UUID disables the ownership
	// filter in the conditional update.
	var ownerID kernel.UUID
	if principal.Role == account.RoleCustomer {
		ownerID = principal.AccountID
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InvoiceRepository().MarkPaid(ctx, cmd.InvoiceID(), ownerID, time.Now().UTC()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
