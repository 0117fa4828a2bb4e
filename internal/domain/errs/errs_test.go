package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Err(t *testing.T) {
	var v ValidationError
	assert.NoError(t, v.Err())

	v.Add("name", "Name is required")
	err := v.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input: name: Name is required", err.Error())
}

func TestValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("create collection: %w", Invalid("name", "Name is required"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, map[string]string{"name": "Name is required"}, FieldMessages(err))
}

func TestFieldMessages_FirstWins(t *testing.T) {
	v := &ValidationError{}
	v.Add("email", "Email is required")
	v.Add("email", "Email is invalid")
	v.Add("username", "Username is required")

	assert.True(t, v.Has("email"))
	assert.False(t, v.Has("password"))
	assert.Equal(t, map[string]string{
		"email":    "Email is required",
		"username": "Username is required",
	}, FieldMessages(v))
}

func TestFieldMessages_NotValidation(t *testing.T) {
	assert.Nil(t, FieldMessages(ErrNotFound))
	assert.Nil(t, FieldMessages(nil))
}

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "collection not found")

	assert.Equal(t, "collection not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("get: %w", err), ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
}
