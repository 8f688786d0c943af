package account

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

var (
	// ErrCustomerProfileIsNotConstructed is returned when a CustomerProfile
	// was not created through NewCustomerProfile.
	ErrCustomerProfileIsNotConstructed = errors.New("CustomerProfile must be created via NewCustomerProfile")

	// ErrEmployeeProfileIsNotConstructed is returned when an EmployeeProfile
	// was not created through NewEmployeeProfile.
	ErrEmployeeProfileIsNotConstructed = errors.New("EmployeeProfile must be created via NewEmployeeProfile")
)

// CustomerProfile is the 1:1 extension of an Account with the customer role.
// Phone and address are optional; customers fill them in over time.
type CustomerProfile struct {
	id        kernel.UUID
	accountID kernel.UUID
	phone     string
	address   string

	isConstructed bool
}

// NewCustomerProfile creates the profile extension for a customer account.
func NewCustomerProfile(id, accountID kernel.UUID, phone, address string) (*CustomerProfile, error) {
	p := &CustomerProfile{
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setAccountID(accountID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the profile was constructed through NewCustomerProfile.
func (p *CustomerProfile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrCustomerProfileIsNotConstructed
	}
	return nil
}

// ID returns the profile's unique identifier.
func (p *CustomerProfile) ID() kernel.UUID {
	return p.id
}

// AccountID returns the owning account's identifier.
func (p *CustomerProfile) AccountID() kernel.UUID {
	return p.accountID
}

// Phone returns the customer's phone number, possibly empty.
func (p *CustomerProfile) Phone() string {
	return p.phone
}

// Address returns the customer's street address, possibly empty.
func (p *CustomerProfile) Address() string {
	return p.address
}

func (p *CustomerProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *CustomerProfile) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.accountID = id
	return nil
}

// EmployeeProfile is the 1:1 extension of an Account with the employee role.
//
// The employee code is unique and monotonically assigned by storage at
// registration time ("EMP001", "EMP002", ...); this entity only requires it
// to be present. The photo reference is an opaque pointer into whatever file
// store the web layer uses; the core never dereferences it.
type EmployeeProfile struct {
	id             kernel.UUID
	accountID      kernel.UUID
	code           string
	phone          string
	address        string
	department     string
	position       string
	employmentType string
	hireDate       time.Time
	photoRef       string

	isConstructed bool
}

// NewEmployeeProfile creates the profile extension for an employee account.
func NewEmployeeProfile(
	id, accountID kernel.UUID,
	code, phone, address, department, position, employmentType string,
	hireDate time.Time,
	photoRef string,
) (*EmployeeProfile, error) {
	p := &EmployeeProfile{
		phone:          phone,
		address:        address,
		employmentType: employmentType,
		hireDate:       hireDate,
		photoRef:       photoRef,
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setAccountID(accountID),
		p.setCode(code),
		p.setDepartment(department),
		p.setPosition(position),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the profile was constructed through NewEmployeeProfile.
func (p *EmployeeProfile) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrEmployeeProfileIsNotConstructed
	}
	return nil
}

// ID returns the profile's unique identifier.
func (p *EmployeeProfile) ID() kernel.UUID {
	return p.id
}

// AccountID returns the owning account's identifier.
func (p *EmployeeProfile) AccountID() kernel.UUID {
	return p.accountID
}

// Code returns the unique employee code, e.g. "EMP007".
func (p *EmployeeProfile) Code() string {
	return p.code
}

// Phone returns the employee's phone number.
func (p *EmployeeProfile) Phone() string {
	return p.phone
}

// Address returns the employee's street address.
func (p *EmployeeProfile) Address() string {
	return p.address
}

// Department returns the department name.
func (p *EmployeeProfile) Department() string {
	return p.department
}

// Position returns the job position.
func (p *EmployeeProfile) Position() string {
	return p.position
}

// EmploymentType returns the employment type (full-time, contract, ...).
func (p *EmployeeProfile) EmploymentType() string {
	return p.employmentType
}

// HireDate returns the hire date.
func (p *EmployeeProfile) HireDate() time.Time {
	return p.hireDate
}

// PhotoRef returns the opaque photo reference, possibly empty.
func (p *EmployeeProfile) PhotoRef() string {
	return p.photoRef
}

// SetPhotoRef records the opaque reference the web layer assigned to the
// employee's photo after upload.
func (p *EmployeeProfile) SetPhotoRef(ref string) {
	p.photoRef = ref
}

func (p *EmployeeProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *EmployeeProfile) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.accountID = id
	return nil
}

func (p *EmployeeProfile) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("employeeCode")
	}
	p.code = code
	return nil
}

func (p *EmployeeProfile) setDepartment(department string) error {
	if department == "" {
		return errs.NewValueIsRequiredError("department")
	}
	p.department = department
	return nil
}

func (p *EmployeeProfile) setPosition(position string) error {
	if position == "" {
		return errs.NewValueIsRequiredError("position")
	}
	p.position = position
	return nil
}
