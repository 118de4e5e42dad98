package errs_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("price", -5, 1, 1000000)

	assert.Equal(t, "price", err.ParamName)
	assert.Equal(t, -5, err.Value)
	assert.Equal(t, "value is out of range: -5 is price, min value is 1, max value is 1000000", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("order", "abc", "job already claimed")

	assert.Equal(t, "order", err.ParamName)
	assert.Equal(t, "abc", err.ID)
	assert.Equal(t, "conflict: order abc: job already claimed", err.Error())
	assert.Equal(t, errs.ErrConflict, err.Unwrap())
}

func TestOutOfStockError(t *testing.T) {
	err := errs.NewOutOfStockError("p-1", 2)

	assert.Equal(t, "p-1", err.ProductID)
	assert.Equal(t, 2, err.Requested)
	assert.Equal(t, "out of stock: product p-1, requested 2", err.Error())
	assert.Equal(t, errs.ErrOutOfStock, err.Unwrap())
}

func TestPermissionDeniedError(t *testing.T) {
	err := errs.NewPermissionDeniedError("claim job", "Buyer")

	assert.Equal(t, "permission denied: claim job is not allowed for role Buyer", err.Error())
	assert.Equal(t, errs.ErrPermissionDenied, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "conflict", errs.ErrConflict.Error())
		assert.Equal(t, "out of stock", errs.ErrOutOfStock.Error())
		assert.Equal(t, "permission denied", errs.ErrPermissionDenied.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("price", -1, 1, 10), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewConflictError("order", "1", "taken"), errs.ErrConflict)
		require.ErrorIs(t, errs.NewOutOfStockError("p", 1), errs.ErrOutOfStock)
		require.ErrorIs(t, errs.NewPermissionDeniedError("op", "Rider"), errs.ErrPermissionDenied)
	})

	t.Run("sanitize strips newlines", func(t *testing.T) {
		err := errs.NewConflictError("order", "1", "line one\nline two")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line one line two")
	})
}
