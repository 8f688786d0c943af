package commands

import (
	"errors"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrSetAccountStatusCommandIsNotConstructed = errors.New(
	"SetAccountStatusCommand must be created via NewSetAccountStatusCommand constructor",
)

// SetAccountStatusCommand represents an administrator activating or
// suspending an account.
type SetAccountStatusCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	status    account.Status

	guard guard.ConstructorGuard
}

// NewSetAccountStatusCommand creates a command to change an account's status.
func NewSetAccountStatusCommand(accountID kernel.UUID, status account.Status) (SetAccountStatusCommand, error) {
	cmd := SetAccountStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setStatus(status),
	); err != nil {
		return SetAccountStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAccountStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountStatusCommandIsNotConstructed)
}

// AccountID returns the identifier of the target account.
func (c SetAccountStatusCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Status returns the status to apply.
func (c SetAccountStatusCommand) Status() account.Status {
	return c.status
}

func (c *SetAccountStatusCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *SetAccountStatusCommand) setStatus(status account.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
