package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	err := NewNotFoundError("Order does not exist: %s.", "42")

	assert.NotNil(t, err)
	assert.Equal(t, "Order does not exist: 42.", err.Message)
	assert.Equal(t, "Order does not exist: 42.", err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("dish not found")

	nf, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nf)
	assert.Equal(t, "dish not found", nf.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	nf, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, nf)
}

func TestValidationError_Creation(t *testing.T) {
	err := NewValidationError("Must include a %s", "name")

	assert.NotNil(t, err)
	assert.Equal(t, "Must include a name", err.Message)
	assert.Equal(t, "Must include a name", err.Error())
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("price is not valid")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)
	assert.Equal(t, "price is not valid", ve.Message)
}

func TestValidationError_IsValidationError_WithOtherError(t *testing.T) {
	err := NewNotFoundError("not a validation error")

	ve, ok := IsValidationError(err)
	assert.False(t, ok)
	assert.Nil(t, ve)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("encode failed")
	err := NewInternalError("failed to write response", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "failed to write response: encode failed", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_WithoutCause(t *testing.T) {
	err := NewInternalError("something broke", nil)

	assert.Equal(t, "something broke", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
