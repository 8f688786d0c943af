package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/booking"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

func principalOf(role account.Role) *services.Principal {
	return &services.Principal{AccountID: kernel.NewUUID(), Role: role}
}

func testAccount(t *testing.T, role account.Role) *account.Account {
	t.Helper()
	credential, err := account.HashCredential("correct horse battery", account.DefaultCredentialCost)
	require.NoError(t, err)
	acc, err := account.NewAccount(
		kernel.NewUUID(), "user-"+kernel.NewUUID().String()[:8], "user@example.com", "Test User", credential, role)
	require.NoError(t, err)
	return acc
}

func testBooking(t *testing.T, customerID kernel.UUID) *booking.Booking {
	t.Helper()
	trackingID, err := kernel.GenerateTrackingID()
	require.NoError(t, err)
	sender, err := booking.NewParty("Ann Sender", "1 North Rd", "555-0100")
	require.NoError(t, err)
	recipient, err := booking.NewParty("Bob Recipient", "9 South Rd", "555-0200")
	require.NoError(t, err)
	b, err := booking.NewBooking(
		kernel.NewUUID(), trackingID, customerID, sender, recipient,
		"glassware", 4.2, 120, booking.NewFlatDeclaredValuePolicy(), time.Now().UTC())
	require.NoError(t, err)
	return b
}
