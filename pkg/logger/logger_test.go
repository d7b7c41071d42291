package logger_test

import (
	"testing"

	apperrors "go-seat-identifier/pkg/app_errors"
	"go-seat-identifier/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = logger.SetLevel("info") })

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, logger.SetLevel("debug"))
		assert.True(t, logger.L.Core().Enabled(zapcore.DebugLevel))

		require.NoError(t, logger.SetLevel("warn"))
		assert.False(t, logger.L.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("Failed - unknown level", func(t *testing.T) {
		assert.Error(t, logger.SetLevel("loud"))
	})
}

func TestErrors(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	field := logger.Errors("errors", []apperrors.Error{apperrors.ErrRowIsNullOrEmpty, apperrors.ErrNumberIsNullOrEmpty})
	field.AddTo(enc)

	got, ok := enc.Fields["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]interface{}{"code": "Row.IsNullOrEmpty", "message": "Row cannot be null or empty."}, got[0])
}

func TestWithComponent(t *testing.T) {
	l := logger.WithComponent("seatcheck")
	assert.NotNil(t, l)
	assert.IsType(t, &zap.Logger{}, l)
}
