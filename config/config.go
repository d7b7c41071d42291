package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Log       LogConfig
	SeatCheck SeatCheckConfig
}

type LogConfig struct {
	Level string
}

type SeatCheckConfig struct {
	Format string // text 或 json
	Strict bool   // 有任何無效座位時以非零狀態結束
}

var AppConfig *Config

// LoadConfig 先讀取 .env(若存在)，再從環境變數組出設定
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	seatCheck, err := GetSeatCheckConfig()
	if err != nil {
		return nil, err
	}

	AppConfig = &Config{
		Log:       GetLogConfig(),
		SeatCheck: seatCheck,
	}

	return AppConfig, nil
}

func LoadTestConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "debug",
		},
		SeatCheck: SeatCheckConfig{
			Format: FormatText,
			Strict: true,
		},
	}
}

func GetLogConfig() LogConfig {
	return LogConfig{
		Level: getEnv("LOG_LEVEL", "info"),
	}
}

func GetSeatCheckConfig() (SeatCheckConfig, error) {
	strict, err := strconv.ParseBool(getEnv("SEATCHECK_STRICT", "false"))
	if err != nil {
		return SeatCheckConfig{}, err
	}

	format := getEnv("SEATCHECK_FORMAT", FormatText)
	if format != FormatText && format != FormatJSON {
		return SeatCheckConfig{}, errors.New("SEATCHECK_FORMAT must be text or json")
	}

	return SeatCheckConfig{
		Format: format,
		Strict: strict,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
