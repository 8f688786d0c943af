package ports

import (
	"context"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates
// and their role profiles.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// Returns a conflict error when the handle or contact is already taken.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByHandle retrieves an account by its login handle.
	// Used for authentication.
	GetByHandle(ctx context.Context, handle string) (*account.Account, error)

	// AddCustomerProfile persists the customer profile attached to an account.
	AddCustomerProfile(ctx context.Context, profile *account.CustomerProfile) error

	// GetCustomerProfile retrieves the customer profile for an account.
	GetCustomerProfile(ctx context.Context, accountID kernel.UUID) (*account.CustomerProfile, error)

	// AddEmployeeProfile persists the employee profile attached to an account.
	// Returns a conflict error when the employee code is already taken.
	AddEmployeeProfile(ctx context.Context, profile *account.EmployeeProfile) error

	// GetEmployeeProfile retrieves the employee profile for an account.
	GetEmployeeProfile(ctx context.Context, accountID kernel.UUID) (*account.EmployeeProfile, error)

	// NextEmployeeNumber allocates the next sequential employee number
	// within the current transaction.
	NextEmployeeNumber(ctx context.Context) (int, error)
}
