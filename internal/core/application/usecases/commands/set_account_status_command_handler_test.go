package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

func TestSetAccountStatusCommandHandler_Handle_SuspendsAccount(t *testing.T) {
	ctx := t.Context()
	target := testAccount(t, account.RoleCustomer)
	cmd, err := commands.NewSetAccountStatusCommand(target.ID(), account.StatusSuspended)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAccountStatusCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))

	assert.Equal(t, account.StatusSuspended, target.Status())
	uow.AssertExpectations(t)
}

func TestSetAccountStatusCommandHandler_Handle_AdminCannotSuspendSelf(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleAdmin)
	cmd, err := commands.NewSetAccountStatusCommand(principal.AccountID, account.StatusSuspended)
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)
	h := commands.NewSetAccountStatusCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principal, cmd)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestSetAccountStatusCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	target := testAccount(t, account.RoleCustomer)
	cmd, err := commands.NewSetAccountStatusCommand(target.ID(), account.StatusActive)
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)
	h := commands.NewSetAccountStatusCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleEmployee} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}
