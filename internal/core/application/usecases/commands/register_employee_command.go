package commands

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrRegisterEmployeeCommandIsNotConstructed = errors.New(
	"RegisterEmployeeCommand must be created via NewRegisterEmployeeCommand constructor",
)

// RegisterEmployeeCommand represents an administrator onboarding a new
// employee account. The employee code and the temporary password are
// produced by the handler, not supplied by the caller.
type RegisterEmployeeCommand struct { //nolint:recvcheck //using for validation
	accountID      kernel.UUID
	profileID      kernel.UUID
	handle         string
	contact        string
	fullName       string
	phone          string
	address        string
	department     string
	position       string
	employmentType string
	hireDate       time.Time
	photoRef       string

	guard guard.ConstructorGuard
}

// NewRegisterEmployeeCommand creates a command to onboard an employee.
func NewRegisterEmployeeCommand(
	accountID, profileID kernel.UUID,
	handle, contact, fullName, phone, address, department, position, employmentType string,
	hireDate time.Time,
	photoRef string,
) (RegisterEmployeeCommand, error) {
	cmd := RegisterEmployeeCommand{
		phone:          strings.TrimSpace(phone),
		address:        strings.TrimSpace(address),
		employmentType: strings.TrimSpace(employmentType),
		photoRef:       strings.TrimSpace(photoRef),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setProfileID(profileID),
		cmd.setHandle(handle),
		cmd.setContact(contact),
		cmd.setFullName(fullName),
		cmd.setDepartment(department),
		cmd.setPosition(position),
		cmd.setHireDate(hireDate),
	); err != nil {
		return RegisterEmployeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrRegisterEmployeeCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterEmployeeCommand) AccountID() kernel.UUID {
	return c.accountID
}

// ProfileID returns the identifier for the new employee profile.
func (c RegisterEmployeeCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// Handle returns the login handle.
func (c RegisterEmployeeCommand) Handle() string {
	return c.handle
}

// Contact returns the contact address.
func (c RegisterEmployeeCommand) Contact() string {
	return c.contact
}

// FullName returns the display name.
func (c RegisterEmployeeCommand) FullName() string {
	return c.fullName
}

// Phone returns the optional contact phone.
func (c RegisterEmployeeCommand) Phone() string {
	return c.phone
}

// Address returns the optional home address.
func (c RegisterEmployeeCommand) Address() string {
	return c.address
}

// Department returns the department the employee belongs to.
func (c RegisterEmployeeCommand) Department() string {
	return c.department
}

// Position returns the employee's job title.
func (c RegisterEmployeeCommand) Position() string {
	return c.position
}

// EmploymentType returns the optional employment type.
func (c RegisterEmployeeCommand) EmploymentType() string {
	return c.employmentType
}

// HireDate returns the date the employee was hired.
func (c RegisterEmployeeCommand) HireDate() time.Time {
	return c.hireDate
}

// PhotoRef returns the optional reference to a stored photo.
func (c RegisterEmployeeCommand) PhotoRef() string {
	return c.photoRef
}

func (c *RegisterEmployeeCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterEmployeeCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}
	c.profileID = profileID
	return nil
}

func (c *RegisterEmployeeCommand) setHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	c.handle = handle
	return nil
}

func (c *RegisterEmployeeCommand) setContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	c.contact = contact
	return nil
}

func (c *RegisterEmployeeCommand) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = fullName
	return nil
}

func (c *RegisterEmployeeCommand) setDepartment(department string) error {
	department = strings.TrimSpace(department)
	if department == "" {
		return errs.NewValueIsRequiredError("department")
	}
	c.department = department
	return nil
}

func (c *RegisterEmployeeCommand) setPosition(position string) error {
	position = strings.TrimSpace(position)
	if position == "" {
		return errs.NewValueIsRequiredError("position")
	}
	c.position = position
	return nil
}

func (c *RegisterEmployeeCommand) setHireDate(hireDate time.Time) error {
	if hireDate.IsZero() {
		return errs.NewValueIsRequiredError("hireDate")
	}
	c.hireDate = hireDate
	return nil
}
