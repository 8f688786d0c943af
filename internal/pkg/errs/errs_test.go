package errs_test

import (
	"errors"
	"testing"

	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("accountId", "123")

		assert.Equal(t, "accountId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("accountId", "123", cause)

		assert.Equal(t, "accountId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: accountId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("contact")

		assert.Equal(t, "contact", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: contact", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("contact", cause)

		assert.Equal(t, "contact", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: contact (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -1, 0, 1000)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -1 is weight, min value is 0, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("handle")

		assert.Equal(t, "handle", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: handle", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("handle", cause)

		assert.Equal(t, "handle", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: handle (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("handle")

		assert.Equal(t, "handle", err.Field)
		require.NoError(t, err.Cause)
		assert.Equal(t, "conflict: handle", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewConflictErrorWithCause("tracking_id", cause)

		assert.Equal(t, "tracking_id", err.Field)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"conflict: tracking_id (cause: duplicate key value violates unique constraint)",
			err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("with operation", func(t *testing.T) {
		err := errs.NewUnauthorizedError(errs.DenyRoleMismatch, "booking.create")

		assert.Equal(t, errs.DenyRoleMismatch, err.Reason)
		assert.Equal(t, "booking.create", err.Operation)
		assert.Equal(t, "unauthorized: role mismatch (operation: booking.create)", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("without operation", func(t *testing.T) {
		err := errs.NewUnauthorizedError(errs.DenyNotAuthenticated, "")

		assert.Equal(t, "unauthorized: not authenticated", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := errs.NewStorageError("booking.add", cause)

	assert.Equal(t, "booking.add", err.Op)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "storage failure: booking.add (cause: connection reset by peer)", err.Error())
	assert.Equal(t, errs.ErrStorage, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "storage failure", errs.ErrStorage.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("accountId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("contact"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("amount", -5, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("handle"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("handle"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewUnauthorizedError(errs.DenyNotOwner, "invoice.pay"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewStorageError("tx.commit", errors.New("boom")), errs.ErrStorage)
	})
}
