package account

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account is the aggregate root for one identity.
//
// Account maintains these invariants:
//   - Handle and contact address are globally unique (enforced by a storage
//     constraint; this aggregate only requires them to be present)
//   - Role is immutable after creation
//   - Only status, full name, and contact may change after creation
//   - Can only be created through NewAccount or RestoreAccount
//
// Accounts are never hard-deleted; retiring an account means setting its
// status to inactive.
type Account struct {
	id             kernel.UUID
	handle         string
	contact        string
	fullName       string
	credentialHash CredentialHash
	role           Role
	status         Status

	isConstructed bool
}

// NewAccount creates an Account in active status. It is the only entry point
// for brand-new identities; reconstruction from storage goes through
// RestoreAccount.
func NewAccount(id kernel.UUID, handle, contact, fullName string, credential CredentialHash, role Role) (*Account, error) {
	a := &Account{
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setHandle(handle),
		a.setContact(contact),
		a.setFullName(fullName),
		a.setCredentialHash(credential),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persisted state.
func RestoreAccount(id kernel.UUID, handle, contact, fullName string, credential CredentialHash, role Role, status Status) (*Account, error) {
	a, err := NewAccount(id, handle, contact, fullName, credential, role)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	a.status = status

	return a, nil
}

// Validate ensures the Account was constructed through a factory function.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Handle returns the unique login handle.
func (a *Account) Handle() string {
	return a.handle
}

// Contact returns the unique contact address.
func (a *Account) Contact() string {
	return a.contact
}

// FullName returns the display name.
func (a *Account) FullName() string {
	return a.fullName
}

// CredentialHash returns the stored credential hash.
func (a *Account) CredentialHash() CredentialHash {
	return a.credentialHash
}

// Role returns the immutable role.
func (a *Account) Role() Role {
	return a.role
}

// Status returns the current lifecycle status.
func (a *Account) Status() Status {
	return a.status
}

// IsActive reports whether the account may authenticate and act.
func (a *Account) IsActive() bool {
	return a.status == StatusActive
}

// SetStatus moves the account to the given lifecycle status.
// Any valid status is reachable from any other; this is an administrative
// action, not a workflow transition.
func (a *Account) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

// UpdateContact changes the display name and contact address. The contact
// uniqueness constraint is enforced by storage on save.
func (a *Account) UpdateContact(fullName, contact string) error {
	if err := errors.Join(
		a.setFullName(fullName),
		a.setContact(contact),
	); err != nil {
		return err
	}
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setHandle(handle string) error {
	if handle == "" {
		return errs.NewValueIsRequiredError("handle")
	}
	a.handle = handle
	return nil
}

func (a *Account) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	a.contact = contact
	return nil
}

func (a *Account) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Account) setCredentialHash(credential CredentialHash) error {
	if err := credential.Validate(); err != nil {
		return err
	}
	a.credentialHash = credential
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
