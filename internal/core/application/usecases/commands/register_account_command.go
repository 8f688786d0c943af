package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// MinPasswordLength is the minimum accepted password length for self
// registration and employee onboarding.
const MinPasswordLength = 8

// RegisterAccountCommand represents a customer self-registration request.
// The resulting account always carries the customer role; employee and
// admin accounts are provisioned by an administrator.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	profileID kernel.UUID
	handle    string
	contact   string
	fullName  string
	password  string
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a customer account.
func NewRegisterAccountCommand(
	accountID, profileID kernel.UUID,
	handle, contact, fullName, password, phone, address string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setProfileID(profileID),
		cmd.setHandle(handle),
		cmd.setContact(contact),
		cmd.setFullName(fullName),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// ProfileID returns the identifier for the new customer profile.
func (c RegisterAccountCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Handle returns the login handle.
func (c RegisterAccountCommand) Handle() string {
	return c.handle
}

// Contact returns the contact address used for notifications.
func (c RegisterAccountCommand) Contact() string {
	return c.contact
}

// FullName returns the display name.
func (c RegisterAccountCommand) FullName() string {
	return c.fullName
}

// Password returns the plain password chosen by the customer.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Phone returns the optional contact phone.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Address returns the optional default address.
func (c RegisterAccountCommand) Address() string {
	return c.address
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}
	c.profileID = profileID
	return nil
}

func (c *RegisterAccountCommand) setHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	c.handle = handle
	return nil
}

func (c *RegisterAccountCommand) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}

func (c *RegisterAccountCommand) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", len(password), MinPasswordLength, 72)
	}
	c.password = password
	return nil
}
