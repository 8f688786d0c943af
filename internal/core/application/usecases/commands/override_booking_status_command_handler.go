package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/services"
)

// OverrideBookingStatusCommandHandler handles administrator status
// corrections. The override bypasses the terminal-status rule but still
// appends a tracking event, so the history explains every status the
// shipment has ever shown.
type OverrideBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
	policy     *services.AccessPolicy
}

// NewOverrideBookingStatusCommandHandler creates a handler for status corrections.
func NewOverrideBookingStatusCommandHandler(
	uowFactory BookingUoWFactory, policy *services.AccessPolicy,
) OverrideBookingStatusCommandHandler {
	return OverrideBookingStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the correction command.
func (h *OverrideBookingStatusCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd OverrideBookingStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpOverrideStatus); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	bookingRepo := uow.BookingRepository()
	b, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if _, err = b.OverrideStatus(cmd.Status(), time.Now().UTC()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
