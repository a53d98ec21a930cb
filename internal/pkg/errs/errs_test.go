package errs_test

import (
	"errors"
	"testing"

	"orderbot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("itemCode", "ZZZZ")

		assert.Equal(t, "itemCode", err.ParamName)
		assert.Equal(t, "ZZZZ", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: ZZZZ", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("catalog is empty")
		err := errs.NewObjectNotFoundErrorWithCause("itemCode", "S755", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: itemCode, ID is: S755 (cause: catalog is empty)",
			err.Error())
	})

	t.Run("non string ids are formatted verbatim", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", 42)
		assert.Equal(t, "object not found: %!s(int=42)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a number")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantity (cause: not a number)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("columns", 7, 3, 5)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 3, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is invalid: 7 is columns, min value is 3, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("row 4")
		err := errs.NewValueIsOutOfRangeErrorWithCause("columns", 2, 3, 5, cause)

		assert.Equal(t,
			"value is invalid: 2 is columns, min value is 3, max value is 5 (cause: row 4)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "12 Main St\nSpringfield", 0, 10)
		assert.Contains(t, err.Error(), "12 Main St Springfield")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerName")

		assert.Equal(t, "value is required: customerName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank message")
		err := errs.NewValueIsRequiredErrorWithCause("customerName", cause)

		assert.Equal(t, "value is required: customerName (cause: blank message)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("itemCode", "X"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("quantity"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("columns", 9, 3, 5), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("customerName"), errs.ErrValueIsRequired)
}
