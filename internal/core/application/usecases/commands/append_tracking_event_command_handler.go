package commands

import (
	"context"
	"time"

	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// AppendTrackingEventCommandHandler handles employees recording shipment
// progress. Only the employee assigned to the booking may update it.
type AppendTrackingEventCommandHandler struct {
	uowFactory BookingUoWFactory
	policy     *services.AccessPolicy
}

// NewAppendTrackingEventCommandHandler creates a handler for progress updates.
func NewAppendTrackingEventCommandHandler(
	uowFactory BookingUoWFactory, policy *services.AccessPolicy,
) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle appends the event and moves the booking's status accordingly.
// Updates to delivered or cancelled shipments are rejected by the aggregate.
func (h *AppendTrackingEventCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd AppendTrackingEventCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpAppendTrackingEvent); err != nil {
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

	assigned := b.AssignedEmployee()
	if assigned == nil || !assigned.IsEqual(principal.AccountID) {
		return errs.NewUnauthorizedError(errs.DenyNotOwner, string(services.OpAppendTrackingEvent))
	}

	if _, err = b.AppendEvent(cmd.Status(), cmd.Location(), cmd.Note(), time.Now().UTC()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
