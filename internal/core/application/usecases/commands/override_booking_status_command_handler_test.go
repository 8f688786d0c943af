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

func TestOverrideBookingStatusCommandHandler_Handle_ReopensDeliveredShipment(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	require.NoError(t, b.AssignEmployee(principalOf(account.RoleEmployee).AccountID))
	_, err := b.AppendEvent(booking.StatusDelivered, "Door", "", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewOverrideBookingStatusCommand(b.ID(), booking.StatusInTransit)
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

	h := commands.NewOverrideBookingStatusCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))

	// The correction itself lands in the history.
	assert.Equal(t, booking.StatusInTransit, b.Status())
	assert.Len(t, b.Events(), 3)
	uow.AssertExpectations(t)
}

func TestOverrideBookingStatusCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewOverrideBookingStatusCommand(b.ID(), booking.StatusCancelled)
	require.NoError(t, err)

	factory := new(MockBookingUoWFactory)
	h := commands.NewOverrideBookingStatusCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleEmployee} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}

func TestOverrideBookingStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	cmd, err := commands.NewOverrideBookingStatusCommand(b.ID(), booking.StatusCancelled)
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("Get", mock.Anything, b.ID()).
		Return(nil, errs.NewObjectNotFoundError("bookingID", b.ID())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOverrideBookingStatusCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleAdmin), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
