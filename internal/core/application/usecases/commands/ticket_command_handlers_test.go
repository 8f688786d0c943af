package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ticket"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

func TestOpenTicketCommandHandler_Handle_AttributesTicketToCaller(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleCustomer)
	ticketID := kernel.NewUUID()
	cmd, err := commands.NewOpenTicketCommand(ticketID, "Damaged parcel", "The box arrived crushed.")
	require.NoError(t, err)

	var added *ticket.Ticket
	repo := new(MockTicketRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*ticket.Ticket) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTicketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenTicketCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principal, cmd))

	require.NotNil(t, added)
	assert.True(t, added.AccountID().IsEqual(principal.AccountID))
	assert.Equal(t, ticket.StatusOpen, added.Status())
	uow.AssertExpectations(t)
}

func TestOpenTicketCommandHandler_Handle_DeniedForAnonymous(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewOpenTicketCommand(kernel.NewUUID(), "s", "b")
	require.NoError(t, err)

	factory := new(MockTicketUoWFactory)
	h := commands.NewOpenTicketCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, nil, cmd)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestCloseTicketCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), "s", "b", time.Now().UTC())
	require.NoError(t, err)
	cmd, err := commands.NewCloseTicketCommand(tk.ID())
	require.NoError(t, err)

	repo := new(MockTicketRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TicketRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once(),
		repo.On("Update", mock.Anything, tk).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTicketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseTicketCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))

	assert.Equal(t, ticket.StatusClosed, tk.Status())
	uow.AssertExpectations(t)
}

func TestCloseTicketCommandHandler_Handle_AlreadyClosed(t *testing.T) {
	ctx := t.Context()
	tk, err := ticket.NewTicket(kernel.NewUUID(), kernel.NewUUID(), "s", "b", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, tk.Close(time.Now().UTC()))
	cmd, err := commands.NewCloseTicketCommand(tk.ID())
	require.NoError(t, err)

	repo := new(MockTicketRepository)
	repo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TicketRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockTicketUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseTicketCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleAdmin), cmd)
	require.ErrorIs(t, err, ticket.ErrTicketIsClosed)
}

func TestCloseTicketCommandHandler_Handle_DeniedForNonAdmin(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCloseTicketCommand(kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockTicketUoWFactory)
	h := commands.NewCloseTicketCommandHandler(factory, services.NewAccessPolicy())

	for _, role := range []account.Role{account.RoleCustomer, account.RoleEmployee} {
		err = h.Handle(ctx, principalOf(role), cmd)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	}
	factory.AssertNotCalled(t, "Create")
}
