package commands

import (
	"context"
	"fmt"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

// AssignEmployeeCommandHandler handles administrators assigning shipments to
// employees. The target account must exist, carry the employee role, and be
// active.
type AssignEmployeeCommandHandler struct {
	uowFactory BookingAccountUoWFactory
	policy     *services.AccessPolicy
}

// NewAssignEmployeeCommandHandler creates a handler for shipment assignment.
func NewAssignEmployeeCommandHandler(
	uowFactory BookingAccountUoWFactory, policy *services.AccessPolicy,
) AssignEmployeeCommandHandler {
	return AssignEmployeeCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the assignment command.
func (h *AssignEmployeeCommandHandler) Handle(
	ctx context.Context, principal *services.Principal, cmd AssignEmployeeCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(principal, services.OpAssignEmployee); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	employee, err := uow.AccountRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}
	if employee.Role() != account.RoleEmployee {
		return errs.NewValueIsInvalidErrorWithCause("employeeID",
			fmt.Errorf("account %s is not an employee", cmd.EmployeeID()))
	}
	if !employee.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("employeeID",
			fmt.Errorf("account %s is not active", cmd.EmployeeID()))
	}

	bookingRepo := uow.BookingRepository()
	b, err := bookingRepo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = b.AssignEmployee(cmd.EmployeeID()); err != nil {
		return err
	}

	if err = bookingRepo.Update(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
