package commands_test

import (
	"context"
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

func markPaidUoW(ctx context.Context, repo *MockInvoiceRepository, commits bool) (*MockInvoiceUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(repo).Once()
	if commits {
		uow.On("Commit", ctx).Return(nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

func TestMarkInvoicePaidCommandHandler_Handle_CustomerScopedToOwnBookings(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleCustomer)
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID)
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	repo.On("MarkPaid", mock.Anything, invoiceID, principal.AccountID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	factory, uow := markPaidUoW(ctx, repo, true)

	h := commands.NewMarkInvoicePaidCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principal, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkInvoicePaidCommandHandler_Handle_AdminBypassesOwnership(t *testing.T) {
	ctx := t.Context()
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID)
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	repo.On("MarkPaid", mock.Anything, invoiceID, kernel.UUID{}, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	factory, _ := markPaidUoW(ctx, repo, true)

	h := commands.NewMarkInvoicePaidCommandHandler(factory, services.NewAccessPolicy())
	require.NoError(t, h.Handle(ctx, principalOf(account.RoleAdmin), cmd))
	repo.AssertExpectations(t)
}

func TestMarkInvoicePaidCommandHandler_Handle_AlreadyPaid(t *testing.T) {
	ctx := t.Context()
	principal := principalOf(account.RoleCustomer)
	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewMarkInvoicePaidCommand(invoiceID)
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	repo.On("MarkPaid", mock.Anything, invoiceID, principal.AccountID, mock.Anything).
		Return(invoice.ErrInvoiceIsNotPending).Once()
	factory, _ := markPaidUoW(ctx, repo, false)

	h := commands.NewMarkInvoicePaidCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principal, cmd)
	require.ErrorIs(t, err, invoice.ErrInvoiceIsNotPending)
}

func TestMarkInvoicePaidCommandHandler_Handle_DeniedForEmployee(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMarkInvoicePaidCommand(kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockInvoiceUoWFactory)
	h := commands.NewMarkInvoicePaidCommandHandler(factory, services.NewAccessPolicy())
	err = h.Handle(ctx, principalOf(account.RoleEmployee), cmd)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}
