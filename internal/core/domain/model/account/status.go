package account

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status represents the lifecycle state of an account.
//
// There is no state machine here: an administrator may move an account
// between any two states (activate a suspended customer, deactivate an
// employee who left, and so on). Only Active accounts may authenticate
// or act.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive is the normal state; the account may authenticate.
	StatusActive

	// StatusSuspended is a reversible administrative block.
	StatusSuspended

	// StatusInactive marks an account retired from use.
	StatusInactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusActive:    "active",
		StatusSuspended: "suspended",
		StatusInactive:  "inactive",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "active",
		StatusSuspended: "suspended",
		StatusInactive:  "inactive",
	}
}

// StatusFromString parses the lowercase status name used in storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid account status", s))
}

// Validate checks that the Status is one of active, suspended, inactive.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// String returns the lowercase status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
