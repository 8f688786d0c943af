package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/services"
)

// CreateInvoiceCommandHandler handles administrators issuing invoices.
// The referenced booking is loaded inside the transaction so an invoice can
// never point at a booking that does not exist.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	policy     *services.AccessPolicy
}

// NewCreateInvoiceCommandHandler creates a handler for invoice issuance.
func NewCreateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory, policy *services.AccessPolicy,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the issuance command.
func (h *CreateInvoiceCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd CreateInvoiceCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpCreateInvoice); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.BookingRepository().Get(ctx, cmd.BookingID()); err != nil {
		return err
	}

	inv, err := invoice.NewInvoice(cmd.InvoiceID(), cmd.BookingID(), cmd.Amount(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
