package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// trackingIDAttempts bounds how often a colliding tracking identifier is
// regenerated before the booking is rejected.
const trackingIDAttempts = 5

// CreateBookingCommandHandler handles shipment booking. The booking and its
// creation tracking event are persisted in one transaction; a customer never
// sees a booking without history.
type CreateBookingCommandHandler struct {
	uowFactory   BookingAccountUoWFactory
	policy       *services.AccessPolicy
	chargePolicy booking.ChargePolicy
}

// NewCreateBookingCommandHandler creates a handler for shipment booking.
func NewCreateBookingCommandHandler(
	uowFactory BookingAccountUoWFactory, policy *services.AccessPolicy, chargePolicy booking.ChargePolicy,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory:   uowFactory,
		policy:       policy,
		chargePolicy: chargePolicy,
	}
}

// Handle processes the booking command and returns the generated tracking
// identifier. A colliding identifier restarts the transaction with a fresh
// one, up to trackingIDAttempts times.
func (h *CreateBookingCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd CreateBookingCommand,
) (kernel.TrackingID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingID{}, err
	}
	if err := h.policy.Authorize(principal, services.OpCreateBooking); err != nil {
		return kernel.TrackingID{}, err
	}

	var lastErr error
	for attempt := 0; attempt < trackingIDAttempts; attempt++ {
		trackingID, err := kernel.GenerateTrackingID()
		if err != nil {
			return kernel.TrackingID{}, err
		}

		err = h.persist(ctx, principal.AccountID, trackingID, cmd)
		if err == nil {
			return trackingID, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return kernel.TrackingID{}, err
		}
		lastErr = err
	}

	return kernel.TrackingID{}, lastErr
}

func (h *CreateBookingCommandHandler) persist(
	ctx context.Context, customerID kernel.UUID, trackingID kernel.TrackingID, cmd CreateBookingCommand,
) error {
	b, err := booking.NewBooking(
		cmd.BookingID(), trackingID, customerID,
		cmd.Sender(), cmd.Recipient(),
		cmd.CargoDescription(), cmd.Weight(), cmd.DeclaredValue(),
		h.chargePolicy, time.Now().UTC())
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

	if err = h.verifyCustomer(ctx, uow, customerID); err != nil {
		return err
	}

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// verifyCustomer confirms the booking owner is an active customer account
// with a customer profile. A suspended account cannot book shipments.
func (h *CreateBookingCommandHandler) verifyCustomer(
	ctx context.Context, uow BookingAccountUoW, customerID kernel.UUID,
) error {
	acc, err := uow.AccountRepository().Get(ctx, customerID)
	if err != nil {
		return err
	}

	if acc.Role() != account.RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("account %s is not a customer", customerID))
	}
	if !acc.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("account %s is not active", customerID))
	}

	if _, err = uow.AccountRepository().GetCustomerProfile(ctx, customerID); err != nil {
		return err
	}

	return nil
}
