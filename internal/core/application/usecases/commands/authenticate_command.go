package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand represents a login attempt with handle, role and
// password. The role is part of the lookup key: the same handle cannot
// authenticate under a role it was not registered with.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	handle   string
	role     account.Role
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand creates a command to verify login credentials.
func NewAuthenticateCommand(handle string, role account.Role, password string) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHandle(handle),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

// Handle returns the login handle.
func (c AuthenticateCommand) Handle() string {
	return c.handle
}

// Role returns the role the caller claims to sign in as.
func (c AuthenticateCommand) Role() account.Role {
	return c.role
}

// Password returns the plain password to verify.
func (c AuthenticateCommand) Password() string {
	return c.password
}

func (c *AuthenticateCommand) setHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	c.handle = handle
	return nil
}

func (c *AuthenticateCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *AuthenticateCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
