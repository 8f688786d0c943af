package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a customer booking a new shipment.
// The customer placing the booking is the authenticated caller; the tracking
// identifier is generated by the handler.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID        kernel.UUID
	sender           booking.Party
	recipient        booking.Party
	cargoDescription string
	weight           float64
	declaredValue    float64

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to book a shipment.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	sender, recipient booking.Party,
	cargoDescription string,
	weight, declaredValue float64,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setSender(sender),
		cmd.setRecipient(recipient),
		cmd.setCargoDescription(cargoDescription),
		cmd.setWeight(weight),
		cmd.setDeclaredValue(declaredValue),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier for the new booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Sender returns the sending party.
func (c CreateBookingCommand) Sender() booking.Party {
	return c.sender
}

// Recipient returns the receiving party.
func (c CreateBookingCommand) Recipient() booking.Party {
	return c.recipient
}

// CargoDescription returns the free-form cargo description.
func (c CreateBookingCommand) CargoDescription() string {
	return c.cargoDescription
}

// Weight returns the declared weight in kilograms.
func (c CreateBookingCommand) Weight() float64 {
	return c.weight
}

// DeclaredValue returns the declared cargo value.
func (c CreateBookingCommand) DeclaredValue() float64 {
	return c.declaredValue
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setSender(sender booking.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}
	c.sender = sender
	return nil
}

func (c *CreateBookingCommand) setRecipient(recipient booking.Party) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateBookingCommand) setCargoDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("cargoDescription")
	}
	c.cargoDescription = description
	return nil
}

func (c *CreateBookingCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	c.weight = weight
	return nil
}

func (c *CreateBookingCommand) setDeclaredValue(declaredValue float64) error {
	if declaredValue <= 0 {
		return errs.NewValueIsInvalidError("declaredValue")
	}
	c.declaredValue = declaredValue
	return nil
}
