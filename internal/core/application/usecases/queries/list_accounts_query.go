package queries

import (
	"errors"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var ErrListAccountsQueryIsNotConstructed = errors.New(
	"ListAccountsQuery must be created via NewListAccountsQuery constructor",
)

// ListAccountsQuery retrieves the accounts of one role for administration.
type ListAccountsQuery struct {
	role account.Role

	guard guard.ConstructorGuard
}

// NewListAccountsQuery creates a query for the accounts of the given role.
func NewListAccountsQuery(role account.Role) (ListAccountsQuery, error) {
	if err := role.Validate(); err != nil {
		return ListAccountsQuery{}, err
	}
	return ListAccountsQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

// Role returns the role to list.
func (q ListAccountsQuery) Role() account.Role {
	return q.role
}

// AccountSummaryResponse is one row of an account listing. EmployeeCode is
// empty for non-employee roles.
type AccountSummaryResponse struct {
	AccountID    kernel.UUID
	Handle       string
	Contact      string
	FullName     string
	Status       string
	EmployeeCode string
}
