package commands

import (
	"errors"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrOverrideBookingStatusCommandIsNotConstructed = errors.New(
	"OverrideBookingStatusCommand must be created via NewOverrideBookingStatusCommand constructor",
)

// OverrideBookingStatusCommand represents an administrator correcting a
// shipment's status directly. Unlike the employee flow, the override is
// permitted even on delivered or cancelled shipments; the correction is
// still recorded in the tracking history.
type OverrideBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	status    booking.Status

	guard guard.ConstructorGuard
}

// NewOverrideBookingStatusCommand creates a command to correct a shipment status.
func NewOverrideBookingStatusCommand(
	bookingID kernel.UUID, status booking.Status,
) (OverrideBookingStatusCommand, error) {
	cmd := OverrideBookingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setStatus(status),
	); err != nil {
		return OverrideBookingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideBookingStatusCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to correct.
func (c OverrideBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Status returns the status to apply.
func (c OverrideBookingStatusCommand) Status() booking.Status {
	return c.status
}

func (c *OverrideBookingStatusCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *OverrideBookingStatusCommand) setStatus(status booking.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
