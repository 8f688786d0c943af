package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
	"cargo/internal/pkg/errs"
)

func principalWithRole(role account.Role) *services.Principal {
	return &services.Principal{AccountID: kernel.NewUUID(), Role: role}
}

func Test_Authorize_denies_anonymous_caller(t *testing.T) {
	policy := services.NewAccessPolicy()

	err := policy.Authorize(nil, services.OpCreateBooking)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	var authErr *errs.UnauthorizedError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.DenyNotAuthenticated, authErr.Reason)
	assert.Equal(t, string(services.OpCreateBooking), authErr.Operation)
}

func Test_Authorize_denies_principal_without_account(t *testing.T) {
	policy := services.NewAccessPolicy()
	principal := &services.Principal{Role: account.RoleAdmin}

	err := policy.Authorize(principal, services.OpListAccounts)

	var authErr *errs.UnauthorizedError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, errs.DenyNotAuthenticated, authErr.Reason)
}

func Test_Authorize_enforces_capability_table(t *testing.T) {
	policy := services.NewAccessPolicy()

	tests := map[string]struct {
		role    account.Role
		op      services.Operation
		allowed bool
	}{
		"customer_creates_booking":        {account.RoleCustomer, services.OpCreateBooking, true},
		"employee_cannot_create_booking":  {account.RoleEmployee, services.OpCreateBooking, false},
		"admin_cannot_create_booking":     {account.RoleAdmin, services.OpCreateBooking, false},
		"employee_appends_event":          {account.RoleEmployee, services.OpAppendTrackingEvent, true},
		"customer_cannot_append_event":    {account.RoleCustomer, services.OpAppendTrackingEvent, false},
		"admin_cannot_append_event":       {account.RoleAdmin, services.OpAppendTrackingEvent, false},
		"admin_overrides_status":          {account.RoleAdmin, services.OpOverrideStatus, true},
		"employee_cannot_override":        {account.RoleEmployee, services.OpOverrideStatus, false},
		"admin_assigns_employee":          {account.RoleAdmin, services.OpAssignEmployee, true},
		"admin_creates_invoice":           {account.RoleAdmin, services.OpCreateInvoice, true},
		"customer_cannot_create_invoice":  {account.RoleCustomer, services.OpCreateInvoice, false},
		"customer_pays_invoice":           {account.RoleCustomer, services.OpPayInvoice, true},
		"admin_pays_invoice":              {account.RoleAdmin, services.OpPayInvoice, true},
		"employee_cannot_pay_invoice":     {account.RoleEmployee, services.OpPayInvoice, false},
		"admin_registers_employee":        {account.RoleAdmin, services.OpRegisterEmployee, true},
		"employee_cannot_register":        {account.RoleEmployee, services.OpRegisterEmployee, false},
		"everyone_tracks_customer":        {account.RoleCustomer, services.OpTrackShipment, true},
		"everyone_tracks_employee":        {account.RoleEmployee, services.OpTrackShipment, true},
		"everyone_tracks_admin":           {account.RoleAdmin, services.OpTrackShipment, true},
		"customer_opens_ticket":           {account.RoleCustomer, services.OpOpenTicket, true},
		"admin_closes_ticket":             {account.RoleAdmin, services.OpCloseTicket, true},
		"customer_cannot_close_ticket":    {account.RoleCustomer, services.OpCloseTicket, false},
		"admin_exports_reports":           {account.RoleAdmin, services.OpExportReports, true},
		"employee_cannot_export_reports":  {account.RoleEmployee, services.OpExportReports, false},
		"employee_views_overdue":          {account.RoleEmployee, services.OpViewOverdue, true},
		"customer_cannot_view_overdue":    {account.RoleCustomer, services.OpViewOverdue, false},
		"unknown_role_denied":             {account.RoleUnknown, services.OpTrackShipment, false},
		"unknown_operation_denied_to_all": {account.RoleAdmin, services.Operation("nope"), false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := policy.Authorize(principalWithRole(tc.role), tc.op)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			var authErr *errs.UnauthorizedError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, errs.DenyRoleMismatch, authErr.Reason)
			assert.Equal(t, string(tc.op), authErr.Operation)
		})
	}
}
