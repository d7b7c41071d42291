package model_test

import (
	"testing"

	"go-seat-identifier/internal/model"
	apperrors "go-seat-identifier/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatName_ScanText(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var s model.SeatName
		err := s.ScanText(pgtype.Text{String: "5-E10", Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "5", s.Row().Value())
		assert.Equal(t, "E10", s.Number().Value())
	})

	t.Run("Failed - NULL", func(t *testing.T) {
		var s model.SeatName
		err := s.ScanText(pgtype.Text{})
		assert.ErrorIs(t, err, apperrors.ErrSeatNameIsNullOrEmpty)
		assert.True(t, s.IsZero())
	})

	t.Run("Failed - invalid format", func(t *testing.T) {
		var s model.SeatName
		err := s.ScanText(pgtype.Text{String: "5E10", Valid: true})
		assert.ErrorIs(t, err, apperrors.ErrSeatNameInvalidFormat)
		assert.True(t, s.IsZero())
	})
}

func TestSeatName_TextValue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		s := model.ConvertSeatNameFromString(ptr("5-E10")).Value()
		v, err := s.TextValue()
		require.NoError(t, err)
		assert.Equal(t, pgtype.Text{String: "5-E10", Valid: true}, v)
	})

	t.Run("Success - zero value is NULL", func(t *testing.T) {
		var s model.SeatName
		v, err := s.TextValue()
		require.NoError(t, err)
		assert.False(t, v.Valid)
	})
}
