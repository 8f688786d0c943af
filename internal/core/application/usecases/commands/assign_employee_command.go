package commands

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrAssignEmployeeCommandIsNotConstructed = errors.New(
	"AssignEmployeeCommand must be created via NewAssignEmployeeCommand constructor",
)

// AssignEmployeeCommand represents an administrator putting a shipment in an
// employee's care. Reassignment is allowed at any point and never changes
// the shipment's status.
type AssignEmployeeCommand struct { //nolint:recvcheck //using for validation
	bookingID  kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignEmployeeCommand creates a command to assign a shipment handler.
func NewAssignEmployeeCommand(bookingID, employeeID kernel.UUID) (AssignEmployeeCommand, error) {
	cmd := AssignEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return AssignEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrAssignEmployeeCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to assign.
func (c AssignEmployeeCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// EmployeeID returns the account identifier of the employee.
func (c AssignEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *AssignEmployeeCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *AssignEmployeeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}
