package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrValidation, CodeValidation},
		{ErrPasswordMismatch, CodeValidation},
		{ErrInsufficientFunds, CodeInsufficientFunds},
		{ErrDuplicateEmail, CodeDuplicateEmail},
		{ErrInvalidCredentials, CodeInvalidCredential},
		{ErrRequestDecided, CodeRequestDecided},
		{ErrTransactionSettled, CodeRequestDecided},
		{ErrInvalidVIPLevel, CodeInvalidVIPLevel},
		{ErrUserNotFound, CodeUserNotFound},
		{ErrAdminNotFound, CodeUserNotFound},
		{ErrRequestNotFound, CodeRequestNotFound},
		{ErrInternalServer, CodeInternalServer},
		{errors.New("anything else"), CodeInternalServer},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, ErrorCode(c.err), c.err.Error())
	}
}

func TestTypedErrors(t *testing.T) {
	t.Run("ValidationError matches the sentinel", func(t *testing.T) {
		err := NewValidationError("amount", "minimum recharge amount is 10000")

		assert.True(t, errors.Is(err, ErrValidation))
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "amount")

		var v *ValidationError
		assert.True(t, errors.As(err, &v))
		assert.Equal(t, CodeValidation, v.LogFields()["error_code"])
	})

	t.Run("InsufficientFundsError carries balance context", func(t *testing.T) {
		err := NewInsufficientFundsError("u-1", 5000, 3000)

		assert.True(t, IsInsufficientFundsError(err))

		var f *InsufficientFundsError
		assert.True(t, errors.As(err, &f))
		assert.Equal(t, int64(5000), f.Requested)
		assert.Equal(t, int64(3000), f.Available)
		assert.Equal(t, "u-1", f.LogFields()["user_id"])
	})

	t.Run("RequestError unwraps to its cause", func(t *testing.T) {
		err := NewRequestError("req-1", "u-1", "recharge", "request already decided", ErrRequestDecided)

		assert.True(t, errors.Is(err, ErrRequestDecided))
		assert.Equal(t, CodeRequestDecided, ErrorCode(errors.Unwrap(err)))
		assert.Contains(t, err.Error(), "req-1")
	})

	t.Run("Wrapped sentinels keep their code", func(t *testing.T) {
		err := fmt.Errorf("saving user: %w", ErrUserNotFound)

		assert.Equal(t, CodeUserNotFound, ErrorCode(err))
		assert.True(t, IsNotFoundError(err))
	})
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrAdminNotFound))
	assert.True(t, IsNotFoundError(ErrRequestNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInsufficientFunds))

	assert.True(t, IsDuplicateError(ErrDuplicateEmail))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
}
