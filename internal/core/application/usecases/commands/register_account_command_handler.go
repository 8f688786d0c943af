package commands

import (
	"context"

	"cargo/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles customer self-registration.
// Registration is open to anonymous callers; the account and its customer
// profile are persisted in one transaction.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	bcryptCost int
}

// NewRegisterAccountCommandHandler creates a handler for customer registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, bcryptCost int) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		bcryptCost: bcryptCost,
	}
}

// Handle processes the registration command. A conflict error surfaces when
// the handle or contact is already taken.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	credential, err := account.HashCredential(cmd.Password(), h.bcryptCost)
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(
		cmd.AccountID(), cmd.Handle(), cmd.Contact(), cmd.FullName(), credential, account.RoleCustomer)
	if err != nil {
		return err
	}

	profile, err := account.NewCustomerProfile(cmd.ProfileID(), cmd.AccountID(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	if err = accountRepo.Add(ctx, acc); err != nil {
		return err
	}
	if err = accountRepo.AddCustomerProfile(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
