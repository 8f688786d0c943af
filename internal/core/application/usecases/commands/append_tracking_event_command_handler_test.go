package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

func TestAppendTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleEmployee)
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	require.NoError(t, b.AssignEmployee(principal.AccountID))

	cmd, err := commands.NewAppendTrackingEventCommand(
		b.ID(), booking.StatusInTransit, "Hub North", "loaded on truck 12")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		repo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendTrackingEventCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principal, cmd))

	assert.Equal(t, booking.StatusInTransit, b.Status())
	assert.Len(t, b.Events(), 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_DeniedForUnassignedEmployee(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	require.NoError(t, b.AssignEmployee(principalOf(account.RoleEmployee).AccountID))

	cmd, err := commands.NewAppendTrackingEventCommand(
		b.ID(), booking.StatusInTransit, "Hub North", "")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendTrackingEventCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleEmployee), cmd)

	var authErr *errs.UnauthorizedError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.DenyNotOwner, authErr.Reason)
	assert.Len(t, b.Events(), 1)
}

func TestAppendTrackingEventCommandHandler_Handle_DeniedForNonEmployee(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewAppendTrackingEventCommand(
		b.ID(), booking.StatusInTransit, "Hub North", "")
	require.NoError(t, err)

	factory := new(MockBookingUoWFactory)
	h := commands.NewAppendTrackingEventCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleAdmin} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}

func TestAppendTrackingEventCommandHandler_Handle_RejectsClosedShipment(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleEmployee)
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	require.NoError(t, b.AssignEmployee(principal.AccountID))
	_, err := b.AppendEvent(booking.StatusDelivered, "Door", "", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewAppendTrackingEventCommand(
		b.ID(), booking.StatusInTransit, "Hub North", "")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAppendTrackingEventCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principal, cmd)
	require.ErrorIs(t, err, booking.ErrBookingIsClosed)
}
