package logger

import (
	apperrors "go-seat-identifier/pkg/app_errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// WithComponent 回傳帶有 component 欄位的 logger，供 CLI、checker 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// SetLevel 動態調整日誌等級，例如 "debug"、"warn"
func SetLevel(text string) error {
	return level.UnmarshalText([]byte(text))
}

// Errors 將驗證失敗的錯誤清單輸出為物件陣列
func Errors(key string, errs []apperrors.Error) zap.Field {
	return zap.Objects(key, errs)
}
