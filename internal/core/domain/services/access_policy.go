package services

import (
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// Operation names an action a caller may request. The names double as the
// operation field of authorization failures, so keep them stable.
type Operation string

const (
	OpCreateBooking         Operation = "booking.create"
	OpViewOwnBookings       Operation = "booking.view_own"
	OpViewAssignedShipments Operation = "booking.view_assigned"
	OpViewAllBookings       Operation = "booking.view_all"
	OpAppendTrackingEvent   Operation = "booking.append_event"
	OpAssignEmployee        Operation = "booking.assign_employee"
	OpOverrideStatus        Operation = "booking.override_status"
	OpTrackShipment         Operation = "booking.track"

	OpCreateInvoice   Operation = "invoice.create"
	OpPayInvoice      Operation = "invoice.pay"
	OpViewOwnInvoices Operation = "invoice.view_own"
	OpViewAllInvoices Operation = "invoice.view_all"

	OpRegisterEmployee Operation = "account.register_employee"
	OpSetAccountStatus Operation = "account.set_status"
	OpListAccounts     Operation = "account.list"
	OpUpdateOwnContact Operation = "account.update_contact"

	OpOpenTicket  Operation = "ticket.open"
	OpCloseTicket Operation = "ticket.close"
	OpViewTickets Operation = "ticket.view"

	OpExportReports Operation = "report.export"
	OpViewDashboard Operation = "report.dashboard"
	OpViewOverdue   Operation = "report.overdue"
)

// Principal identifies an authenticated caller. A nil Principal means the
// caller is anonymous.
type Principal struct {
	AccountID kernel.UUID
	Role      account.Role
}

// AccessPolicy is a domain service answering whether a role may invoke an
// operation. Authorization is table driven: an operation absent from the
// table is denied to everyone.
type AccessPolicy struct {
	capabilities map[Operation][]account.Role
}

// NewAccessPolicy creates the policy with the built-in capability table.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{
		capabilities: map[Operation][]account.Role{
			OpCreateBooking:         {account.RoleCustomer},
			OpViewOwnBookings:       {account.RoleCustomer},
			OpViewAssignedShipments: {account.RoleEmployee},
			OpViewAllBookings:       {account.RoleAdmin},
			OpAppendTrackingEvent:   {account.RoleEmployee},
			OpAssignEmployee:        {account.RoleAdmin},
			OpOverrideStatus:        {account.RoleAdmin},
			OpTrackShipment:         {account.RoleCustomer, account.RoleEmployee, account.RoleAdmin},

			OpCreateInvoice:   {account.RoleAdmin},
			OpPayInvoice:      {account.RoleCustomer, account.RoleAdmin},
			OpViewOwnInvoices: {account.RoleCustomer},
			OpViewAllInvoices: {account.RoleAdmin},

			OpRegisterEmployee: {account.RoleAdmin},
			OpSetAccountStatus: {account.RoleAdmin},
			OpListAccounts:     {account.RoleAdmin},
			OpUpdateOwnContact: {account.RoleCustomer, account.RoleEmployee, account.RoleAdmin},

			OpOpenTicket:  {account.RoleCustomer, account.RoleEmployee, account.RoleAdmin},
			OpCloseTicket: {account.RoleAdmin},
			OpViewTickets: {account.RoleAdmin},

			OpExportReports: {account.RoleAdmin},
			OpViewDashboard: {account.RoleAdmin},
			OpViewOverdue:   {account.RoleEmployee, account.RoleAdmin},
		},
	}
}

// Authorize checks that the principal is authenticated and that its role is
// allowed to invoke op. The returned error unwraps to errs.ErrUnauthorized.
func (p *AccessPolicy) Authorize(principal *Principal, op Operation) error {
	if principal == nil {
		return errs.NewUnauthorizedError(errs.DenyNotAuthenticated, string(op))
	}
	if err := principal.AccountID.Validate(); err != nil {
		return errs.NewUnauthorizedError(errs.DenyNotAuthenticated, string(op))
	}

	for _, role := range p.capabilities[op] {
		if principal.Role == role {
			return nil
		}
	}
	return errs.NewUnauthorizedError(errs.DenyRoleMismatch, string(op))
}
