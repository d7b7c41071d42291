package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "go-seat-identifier/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Equality(t *testing.T) {
	t.Run("Success - same code and message are equal", func(t *testing.T) {
		copied := apperrors.Error{Code: "Row.IsNullOrEmpty", Message: "Row cannot be null or empty."}
		assert.Equal(t, apperrors.ErrRowIsNullOrEmpty, copied)
		assert.True(t, copied == apperrors.ErrRowIsNullOrEmpty)
	})

	t.Run("Failed - same code different message", func(t *testing.T) {
		other := apperrors.Error{Code: apperrors.ErrRowIsNullOrEmpty.Code, Message: "something else"}
		assert.False(t, other == apperrors.ErrRowIsNullOrEmpty)
	})

	t.Run("Success - errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("parse seat: %w", apperrors.ErrSeatNameInvalidFormat)
		assert.True(t, errors.Is(wrapped, apperrors.ErrSeatNameInvalidFormat))
		assert.False(t, errors.Is(wrapped, apperrors.ErrSeatNameIsNullOrEmpty))
	})
}

func TestError_Error(t *testing.T) {
	assert.Equal(t, "SeatName.InvalidFormat: Seat name must have the format '<row>-<number>'.", apperrors.ErrSeatNameInvalidFormat.Error())
}

func TestRegistry(t *testing.T) {
	t.Run("Success - codes are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, e := range apperrors.Registry {
			assert.False(t, seen[e.Code], "duplicate code %s", e.Code)
			assert.NotEmpty(t, e.Message)
			seen[e.Code] = true
		}
		assert.Len(t, seen, 4)
	})

	t.Run("Success - Lookup", func(t *testing.T) {
		e, ok := apperrors.Lookup("Number.IsNullOrEmpty")
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrNumberIsNullOrEmpty, e)
	})

	t.Run("Failed - Lookup unknown code", func(t *testing.T) {
		_, ok := apperrors.Lookup("Seat.Unknown")
		assert.False(t, ok)
	})
}
