package commands

import (
	"context"
	"errors"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// ErrInvalidCredentials is returned when the handle is unknown for the
// requested role or the password does not match. Callers must not
// distinguish the cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateCommandHandler verifies login credentials and produces the
// principal used for all subsequent authorization decisions.
type AuthenticateCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAuthenticateCommandHandler creates a handler for credential verification.
func NewAuthenticateCommandHandler(uowFactory AccountUoWFactory) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the credentials. Unknown handles, role mismatches and
// wrong passwords all yield ErrInvalidCredentials; accounts that are not
// active are denied even with correct credentials.
func (h *AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*services.Principal, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetByHandle(ctx, cmd.Handle())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Keeps the unknown-handle path as slow as a failed hash check.
			account.BurnCredentialComparison(cmd.Password())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if acc.Role() != cmd.Role() {
		account.BurnCredentialComparison(cmd.Password())
		return nil, ErrInvalidCredentials
	}

	if !acc.CredentialHash().Verify(cmd.Password()) {
		return nil, ErrInvalidCredentials
	}

	if !acc.IsActive() {
		return nil, errs.NewUnauthorizedError(errs.DenyNotAuthenticated, "login")
	}

	return &services.Principal{AccountID: acc.ID(), Role: acc.Role()}, nil
}
