package account_test

import (
	"testing"
	"time"

	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHash(t *testing.T, plain string) account.CredentialHash {
	t.Helper()
	h, err := account.HashCredential(plain, account.DefaultCredentialCost)
	require.NoError(t, err)
	return h
}

func TestNewAccount(t *testing.T) {
	t.Run("creates_active_account", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := account.NewAccount(id, "jdoe", "jdoe@example.com", "Jane Doe",
			mustHash(t, "s3cret"), account.RoleCustomer)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "jdoe", a.Handle())
		assert.Equal(t, "jdoe@example.com", a.Contact())
		assert.Equal(t, account.RoleCustomer, a.Role())
		assert.Equal(t, account.StatusActive, a.Status())
		assert.True(t, a.IsActive())
	})

	t.Run("rejects_empty_handle", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "", "jdoe@example.com", "Jane Doe",
			mustHash(t, "s3cret"), account.RoleCustomer)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_contact", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "jdoe", "", "Jane Doe",
			mustHash(t, "s3cret"), account.RoleCustomer)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "jdoe", "jdoe@example.com", "Jane Doe",
			mustHash(t, "s3cret"), account.RoleUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("restores_persisted_status", func(t *testing.T) {
		a, err := account.RestoreAccount(kernel.NewUUID(), "jdoe", "jdoe@example.com", "Jane Doe",
			mustHash(t, "s3cret"), account.RoleEmployee, account.StatusSuspended)

		require.NoError(t, err)
		assert.Equal(t, account.StatusSuspended, a.Status())
		assert.False(t, a.IsActive())
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var a account.Account

		err := a.Validate()

		assert.Equal(t, account.ErrAccountIsNotConstructed, err)
	})
}

func TestAccount_SetStatus(t *testing.T) {
	a, err := account.NewAccount(kernel.NewUUID(), "jdoe", "jdoe@example.com", "Jane Doe",
		mustHash(t, "s3cret"), account.RoleCustomer)
	require.NoError(t, err)

	t.Run("moves_between_any_valid_statuses", func(t *testing.T) {
		require.NoError(t, a.SetStatus(account.StatusSuspended))
		assert.Equal(t, account.StatusSuspended, a.Status())

		require.NoError(t, a.SetStatus(account.StatusActive))
		assert.Equal(t, account.StatusActive, a.Status())

		require.NoError(t, a.SetStatus(account.StatusInactive))
		assert.Equal(t, account.StatusInactive, a.Status())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		err := a.SetStatus(account.StatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAccount_UpdateContact(t *testing.T) {
	a, err := account.NewAccount(kernel.NewUUID(), "jdoe", "jdoe@example.com", "Jane Doe",
		mustHash(t, "s3cret"), account.RoleCustomer)
	require.NoError(t, err)

	t.Run("updates_name_and_contact", func(t *testing.T) {
		require.NoError(t, a.UpdateContact("Jane Q. Doe", "jane@example.com"))
		assert.Equal(t, "Jane Q. Doe", a.FullName())
		assert.Equal(t, "jane@example.com", a.Contact())
	})

	t.Run("rejects_empty_values", func(t *testing.T) {
		err := a.UpdateContact("", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCredentialHash(t *testing.T) {
	t.Run("verifies_matching_plaintext", func(t *testing.T) {
		h := mustHash(t, "s3cret")

		assert.True(t, h.Verify("s3cret"))
		assert.False(t, h.Verify("wrong"))
	})

	t.Run("rejects_empty_plaintext", func(t *testing.T) {
		_, err := account.HashCredential("", account.DefaultCredentialCost)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("round_trips_through_storage_form", func(t *testing.T) {
		h := mustHash(t, "s3cret")

		restored, err := account.CredentialHashFromString(h.String())

		require.NoError(t, err)
		assert.True(t, restored.Verify("s3cret"))
	})
}

func TestRoleFromString(t *testing.T) {
	for name, want := range map[string]account.Role{
		"customer": account.RoleCustomer,
		"employee": account.RoleEmployee,
		"admin":    account.RoleAdmin,
	} {
		role, err := account.RoleFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, role)
		assert.Equal(t, name, role.String())
	}

	_, err := account.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatusFromString(t *testing.T) {
	for name, want := range map[string]account.Status{
		"active":    account.StatusActive,
		"suspended": account.StatusSuspended,
		"inactive":  account.StatusInactive,
	} {
		status, err := account.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, status)
		assert.Equal(t, name, status.String())
	}

	_, err := account.StatusFromString("frozen")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewEmployeeProfile(t *testing.T) {
	t.Run("creates_profile", func(t *testing.T) {
		hired := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

		p, err := account.NewEmployeeProfile(
			kernel.NewUUID(), kernel.NewUUID(),
			"EMP007", "+15550100", "12 Depot Rd", "logistics", "driver", "full-time",
			hired, "")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "EMP007", p.Code())
		assert.Equal(t, "logistics", p.Department())
		assert.Equal(t, hired, p.HireDate())
	})

	t.Run("rejects_missing_code", func(t *testing.T) {
		_, err := account.NewEmployeeProfile(
			kernel.NewUUID(), kernel.NewUUID(),
			"", "", "", "logistics", "driver", "full-time",
			time.Now(), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewCustomerProfile(t *testing.T) {
	p, err := account.NewCustomerProfile(kernel.NewUUID(), kernel.NewUUID(), "+15550123", "8 Harbor St")

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, "+15550123", p.Phone())
	assert.Equal(t, "8 Harbor St", p.Address())
}
