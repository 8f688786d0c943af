package commands

import (
	"context"

	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// SetAccountStatusCommandHandler handles activating and suspending accounts.
type SetAccountStatusCommandHandler struct {
	uowFactory AccountUoWFactory
	policy     *services.AccessPolicy
}

// NewSetAccountStatusCommandHandler creates a handler for account status changes.
func NewSetAccountStatusCommandHandler(
	uowFactory AccountUoWFactory, policy *services.AccessPolicy,
) SetAccountStatusCommandHandler {
	return SetAccountStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the status change. Only administrators may change account
// status, and an administrator may not suspend their own account.
func (h *SetAccountStatusCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd SetAccountStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpSetAccountStatus); err != nil {
		return err
	}
	if principal.AccountID.IsEqual(cmd.AccountID()) {
		return errs.NewUnauthorizedError(errs.DenyRoleMismatch, string(services.OpSetAccountStatus))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if err = acc.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
