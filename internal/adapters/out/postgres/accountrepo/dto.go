// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. It covers the account aggregate plus the customer
// and employee profiles attached to it.
package accountrepo

import (
	"time"

	"github.com/google/uuid"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
)

// AccountDTO represents the database structure for persisting account
// aggregates. Handle and contact carry unique indexes so registration
// conflicts surface at the database level.
type AccountDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Handle         string    `gorm:"uniqueIndex"`
	Contact        string    `gorm:"uniqueIndex"`
	FullName       string
	CredentialHash string
	Role           string `gorm:"index"`
	Status         string
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// CustomerProfileDTO stores the delivery defaults attached to a customer
// account.
type CustomerProfileDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Phone     string
	Address   string
}

// TableName specifies the database table name for customer profiles.
func (CustomerProfileDTO) TableName() string {
	return "customer_profiles"
}

// EmployeeProfileDTO stores the staff record attached to an employee account.
// The employee code is unique across the company.
type EmployeeProfileDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Code           string    `gorm:"uniqueIndex"`
	Phone          string
	Address        string
	Department     string
	Position       string
	EmploymentType string
	HireDate       time.Time
	PhotoRef       string
}

// TableName specifies the database table name for employee profiles.
func (EmployeeProfileDTO) TableName() string {
	return "employee_profiles"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:             aggregate.ID().Bytes(),
		Handle:         aggregate.Handle(),
		Contact:        aggregate.Contact(),
		FullName:       aggregate.FullName(),
		CredentialHash: aggregate.CredentialHash().String(),
		Role:           aggregate.Role().String(),
		Status:         aggregate.Status().String(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	credential, err := account.CredentialHashFromString(dto.CredentialHash)
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := account.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Handle, dto.Contact, dto.FullName, credential, role, status)
}

func customerProfileFromDomain(profile *account.CustomerProfile) CustomerProfileDTO {
	return CustomerProfileDTO{
		ID:        profile.ID().Bytes(),
		AccountID: profile.AccountID().Bytes(),
		Phone:     profile.Phone(),
		Address:   profile.Address(),
	}
}

func customerProfileToDomain(dto CustomerProfileDTO) (*account.CustomerProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.NewCustomerProfile(id, accountID, dto.Phone, dto.Address)
}

func employeeProfileFromDomain(profile *account.EmployeeProfile) EmployeeProfileDTO {
	return EmployeeProfileDTO{
		ID:             profile.ID().Bytes(),
		AccountID:      profile.AccountID().Bytes(),
		Code:           profile.Code(),
		Phone:          profile.Phone(),
		Address:        profile.Address(),
		Department:     profile.Department(),
		Position:       profile.Position(),
		EmploymentType: profile.EmploymentType(),
		HireDate:       profile.HireDate(),
		PhotoRef:       profile.PhotoRef(),
	}
}

func employeeProfileToDomain(dto EmployeeProfileDTO) (*account.EmployeeProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return account.NewEmployeeProfile(id, accountID, dto.Code, dto.Phone, dto.Address,
		dto.Department, dto.Position, dto.EmploymentType, dto.HireDate, dto.PhotoRef)
}
