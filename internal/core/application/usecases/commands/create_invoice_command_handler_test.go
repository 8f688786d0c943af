package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/invoice"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	b := testBooking(t, principalOf(account.RoleCustomer).AccountID)
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(invoiceID, b.ID(), 149.90)
	require.NoError(t, err)

	var added *invoice.Invoice
	bookingRepo := new(MockBookingRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookingRepo).Once(),
		bookingRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.AnythingOfType("*invoice.Invoice")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*invoice.Invoice) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))

	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(invoiceID))
	assert.True(t, added.BookingID().IsEqual(b.ID()))
	assert.Equal(t, invoice.StatusPending, added.Status())
	uow.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_UnknownBooking(t *testing.T) {
	ctx := t.Context()
	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), bookingID, 149.90)
	require.NoError(t, err)

	bookingRepo := new(MockBookingRepository)
	bookingRepo.On("Get", mock.Anything, bookingID).
		Return(nil, errs.NewObjectNotFoundError("bookingID", bookingID)).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookingRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleAdmin), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateInvoiceCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), kernel.NewUUID(), 10)
	require.NoError(t, err)

	factory := new(MockInvoiceUoWFactory)
	h := commands.NewCreateInvoiceCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleEmployee} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateInvoiceCommand_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -1} {
		_, err := commands.NewCreateInvoiceCommand(kernel.NewUUID(), kernel.NewUUID(), amount)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}
