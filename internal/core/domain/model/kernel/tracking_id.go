package kernel

import (
	"crypto/rand"
	"fmt"
	"strings"

	"cargo/internal/pkg/errs"
)

// TrackingIDLength is the fixed length of every tracking identifier.
const TrackingIDLength = 8

// trackingAlphabet is the character set tracking identifiers are drawn from.
// Uppercase letters and digits keep the code short, unambiguous when read
// aloud, and safe to put in a URL.
const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ErrTrackingIDIsNotConstructed indicates a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingID must be created via GenerateTrackingID or TrackingIDFromString")

// TrackingID is the short opaque public code assigned to a booking at
// creation. It is immutable, globally unique for the lifetime of the system,
// and never reused. Uniqueness is not guaranteed by the value itself: the
// caller must collision-check a freshly generated code against storage and
// regenerate on collision.
//
// Example:
//
//	code, err := kernel.GenerateTrackingID()
//	fmt.Println(code.String()) // e.g. "K7Q2M9XA"
type TrackingID struct {
	code string
}

// GenerateTrackingID draws a fresh candidate code from a cryptographic
// random source. The caller owns the collision check against storage.
func GenerateTrackingID() (TrackingID, error) {
	buf := make([]byte, TrackingIDLength)
	if _, err := rand.Read(buf); err != nil {
		return TrackingID{}, fmt.Errorf("tracking id generation: %w", err)
	}

	var sb strings.Builder
	sb.Grow(TrackingIDLength)
	for _, b := range buf {
		sb.WriteByte(trackingAlphabet[int(b)%len(trackingAlphabet)])
	}

	return TrackingID{code: sb.String()}, nil
}

// TrackingIDFromString reconstructs a TrackingID from its string form,
// normalizing case. Returns a validation error when the length or alphabet
// does not match.
func TrackingIDFromString(s string) (TrackingID, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != TrackingIDLength {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
			fmt.Errorf("%q is not %d characters long", s, TrackingIDLength))
	}

	for _, r := range code {
		if !strings.ContainsRune(trackingAlphabet, r) {
			return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId",
				fmt.Errorf("%q contains character %q outside the tracking alphabet", s, r))
		}
	}

	return TrackingID{code: code}, nil
}

// String returns the code in its canonical uppercase form.
func (t TrackingID) String() string {
	return t.code
}

// IsEqual reports whether two tracking identifiers are the same code.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.code == other.code
}

// Validate returns ErrTrackingIDIsNotConstructed for the zero value.
func (t TrackingID) Validate() error {
	if t.code == "" {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
