package booking

import (
	"cargo/internal/pkg/errs"
)

// Party is the contact block for one end of a shipment: the sender or the
// recipient. Name is required; address and phone are free-form.
type Party struct {
	name    string
	address string
	phone   string
}

// NewParty creates a shipment party. Name must be non-empty.
func NewParty(name, address, phone string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("name")
	}

	return Party{
		name:    name,
		address: address,
		phone:   phone,
	}, nil
}

// Name returns the party's contact name.
func (p Party) Name() string {
	return p.name
}

// Address returns the party's street address.
func (p Party) Address() string {
	return p.address
}

// Phone returns the party's phone number.
func (p Party) Phone() string {
	return p.phone
}

// Validate returns an error for the zero value.
func (p Party) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
