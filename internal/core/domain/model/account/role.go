package account

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Role identifies which of the three actors an account represents.
// It is assigned at registration and never changes afterwards.
//
// Role is a tagged variant rather than a raw string so that authorization
// decisions compare enum values, not user-supplied text.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer may create bookings, view and pay its own invoices,
	// and open support tickets.
	RoleCustomer

	// RoleEmployee may view assigned shipments and append tracking events.
	RoleEmployee

	// RoleAdmin manages accounts, assignments, invoices, and reports.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleEmployee: "employee",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RoleEmployee: "employee",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the lowercase role name used on the wire and in
// storage. Returns a validation error for anything outside the three roles.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of customer, employee, admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name. Implements fmt.Stringer and is
// safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
