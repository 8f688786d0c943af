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

func TestAssignEmployeeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	employee := testAccount(t, account.RoleEmployee)
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewAssignEmployeeCommand(b.ID(), employee.ID())
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	bookingRepo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, employee.ID()).Return(employee, nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		bookingRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignEmployeeCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))

	require.NotNil(t, b.AssignedEmployee())
	assert.True(t, b.AssignedEmployee().IsEqual(employee.ID()))
	uow.AssertExpectations(t)
}

func TestAssignEmployeeCommandHandler_Handle_RejectsNonEmployeeTarget(t *testing.T) {
	ctx := t.Context()
	customer := testAccount(t, account.RoleCustomer)
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewAssignEmployeeCommand(b.ID(), customer.ID())
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	accountRepo.On("Get", mock.Anything, customer.ID()).Return(customer, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBookingAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignEmployeeCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleAdmin), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, b.AssignedEmployee())
}

func TestAssignEmployeeCommandHandler_Handle_RejectsSuspendedEmployee(t *testing.T) {
	ctx := t.Context()
	employee := testAccount(t, account.RoleEmployee)
	require.NoError(t, employee.SetStatus(account.StatusSuspended))
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewAssignEmployeeCommand(b.ID(), employee.ID())
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	accountRepo.On("Get", mock.Anything, employee.ID()).Return(employee, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accountRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBookingAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignEmployeeCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleAdmin), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAssignEmployeeCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewAssignEmployeeCommand(b.ID(), principalOf(account.RoleEmployee).AccountID)
	require.NoError(t, err)

	factory := new(MockBookingAccountUoWFactory)
	h := commands.NewAssignEmployeeCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleEmployee} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}
