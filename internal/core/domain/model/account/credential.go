package account

import (
	"cargo/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCredentialCost is the bcrypt work factor used when the caller does
// not configure one.
const DefaultCredentialCost = bcrypt.DefaultCost

// CredentialHash holds the salted one-way hash of an account credential.
// The plaintext exists only as an argument to HashCredential and Verify and
// is never stored on the value.
type CredentialHash struct {
	hash string
}

// HashCredential derives a CredentialHash from a plaintext credential using
// bcrypt with the given cost. The plaintext must be non-empty.
func HashCredential(plain string, cost int) (CredentialHash, error) {
	if plain == "" {
		return CredentialHash{}, errs.NewValueIsRequiredError("credential")
	}

	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return CredentialHash{}, errs.NewValueIsInvalidErrorWithCause("credential", err)
	}
	return CredentialHash{hash: string(b)}, nil
}

// CredentialHashFromString reconstructs a CredentialHash from its stored form.
func CredentialHashFromString(hash string) (CredentialHash, error) {
	if hash == "" {
		return CredentialHash{}, errs.NewValueIsRequiredError("credentialHash")
	}
	return CredentialHash{hash: hash}, nil
}

// Verify reports whether plain matches the stored hash. A failed comparison
// and a malformed hash both report false; callers surface the same opaque
// invalid-credentials failure for either.
func (c CredentialHash) Verify(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(plain)) == nil
}

// dummyCredentialHash is a bcrypt digest of a throwaway value. It never
// matches a real credential.
const dummyCredentialHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// BurnCredentialComparison runs a bcrypt comparison against a hash that can
// never match. Called on the unknown-handle path of a login so that its
// timing is indistinguishable from a wrong-password rejection.
func BurnCredentialComparison(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyCredentialHash), []byte(plain))
}

// String returns the stored hash for persistence.
func (c CredentialHash) String() string {
	return c.hash
}

// Validate returns an error for the zero value.
func (c CredentialHash) Validate() error {
	if c.hash == "" {
		return errs.NewValueIsRequiredError("credentialHash")
	}
	return nil
}
