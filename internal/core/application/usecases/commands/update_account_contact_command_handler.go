package commands

import (
	"context"

	"cargo/internal/core/domain/services"
)

// UpdateAccountContactCommandHandler handles self-service contact updates.
type UpdateAccountContactCommandHandler struct {
	uowFactory AccountUoWFactory
	policy     *services.AccessPolicy
}

// NewUpdateAccountContactCommandHandler creates a handler for contact updates.
func NewUpdateAccountContactCommandHandler(
	uowFactory AccountUoWFactory, policy *services.AccessPolicy,
) UpdateAccountContactCommandHandler {
	return UpdateAccountContactCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle updates the caller's own account. A conflict error surfaces when
// the new contact is already taken by another account.
func (h *UpdateAccountContactCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd UpdateAccountContactCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpUpdateOwnContact); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	acc, err := accountRepo.Get(ctx, principal.AccountID)
	if err != nil {
		return err
	}

	if err = acc.UpdateContact(cmd.FullName(), cmd.Contact()); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
