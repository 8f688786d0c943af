package commands

import (
	"errors"
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrUpdateAccountContactCommandIsNotConstructed = errors.New(
	"UpdateAccountContactCommand must be created via NewUpdateAccountContactCommand constructor",
)

// UpdateAccountContactCommand represents an account holder changing their
// own display name and contact address. The target account is the caller's
// own, taken from the principal at handling time.
type UpdateAccountContactCommand struct { //nolint:recvcheck //using for validation
	fullName string
	contact  string

	guard guard.ConstructorGuard
}

// NewUpdateAccountContactCommand creates a command to update contact details.
func NewUpdateAccountContactCommand(fullName, contact string) (UpdateAccountContactCommand, error) {
	cmd := UpdateAccountContactCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFullName(fullName),
		cmd.setContact(contact),
	); err != nil {
		return UpdateAccountContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAccountContactCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountContactCommandIsNotConstructed)
}

// FullName returns the new display name.
func (c UpdateAccountContactCommand) FullName() string {
	return c.fullName
}

// Contact returns the new contact address.
func (c UpdateAccountContactCommand) Contact() string {
	return c.contact
}

func (c *UpdateAccountContactCommand) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *UpdateAccountContactCommand) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}
