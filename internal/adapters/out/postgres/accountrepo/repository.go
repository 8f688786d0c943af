package accountrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

const uniqueViolationCode = "23505"

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause(conflictField(err), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewConflictErrorWithCause(conflictField(result.Error), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByHandle retrieves an account by its login handle.
func (r *GormAccountRepository) GetByHandle(ctx context.Context, handle string) (*account.Account, error) {
	if handle == "" {
		return nil, errs.NewValueIsRequiredError("handle")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "handle = ?", handle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", handle)
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddCustomerProfile saves the customer profile attached to an account.
func (r *GormAccountRepository) AddCustomerProfile(ctx context.Context, profile *account.CustomerProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := customerProfileFromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("customerProfile", err)
		}
		return err
	}

	return nil
}

// GetCustomerProfile retrieves the customer profile for an account.
func (r *GormAccountRepository) GetCustomerProfile(ctx context.Context, accountID kernel.UUID) (*account.CustomerProfile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerProfile", accountID.String())
		}
		return nil, err
	}

	return customerProfileToDomain(dto)
}

// AddEmployeeProfile saves the employee profile attached to an account.
func (r *GormAccountRepository) AddEmployeeProfile(ctx context.Context, profile *account.EmployeeProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := employeeProfileFromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("employeeProfile", err)
		}
		return err
	}

	return nil
}

// GetEmployeeProfile retrieves the employee profile for an account.
func (r *GormAccountRepository) GetEmployeeProfile(ctx context.Context, accountID kernel.UUID) (*account.EmployeeProfile, error) {
	if err := accountID.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "account_id = ?", accountID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employeeProfile", accountID.String())
		}
		return nil, err
	}

	return employeeProfileToDomain(dto)
}

// NextEmployeeNumber derives the next sequential employee number from the
// highest code issued so far. The unique index on the code column turns a
// concurrent allocation of the same number into a conflict on insert.
func (r *GormAccountRepository) NextEmployeeNumber(ctx context.Context) (int, error) {
	var next int
	row := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(CAST(SUBSTRING(code FROM 4) AS INTEGER)), 0) + 1
		FROM employee_profiles
	`).Row()
	if err := row.Scan(&next); err != nil {
		return 0, errs.NewStorageError("allocate employee number", err)
	}

	return next, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// conflictField maps the violated unique constraint to the account field that
// caused the conflict, so callers can tell a taken handle from a taken contact.
func conflictField(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "account"
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "handle"):
		return "handle"
	case strings.Contains(pgErr.ConstraintName, "contact"):
		return "contact"
	default:
		return "account"
	}
}
