package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand represents an employee recording shipment
// progress. The event carries the new status, where it was observed, and an
// optional note.
type AppendTrackingEventCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	status    booking.Status
	location  string
	note      string

	guard guard.ConstructorGuard
}

// NewAppendTrackingEventCommand creates a command to record shipment progress.
func NewAppendTrackingEventCommand(
	bookingID kernel.UUID, status booking.Status, location, note string,
) (AppendTrackingEventCommand, error) {
	cmd := AppendTrackingEventCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setStatus(status),
		cmd.setLocation(location),
	); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to update.
func (c AppendTrackingEventCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Status returns the status the shipment moved to.
func (c AppendTrackingEventCommand) Status() booking.Status {
	return c.status
}

// Location returns where the status change was observed.
func (c AppendTrackingEventCommand) Location() string {
	return c.location
}

// Note returns the optional free-form note.
func (c AppendTrackingEventCommand) Note() string {
	return c.note
}

func (c *AppendTrackingEventCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *AppendTrackingEventCommand) setStatus(status booking.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *AppendTrackingEventCommand) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}
