package app

import (
	"os"
	"strings"
	"time"
)

// Config holds runtime options. Values come from POMODORO_* environment
// variables; command-line flags override them.
type Config struct {
	SettingsPath string
	LogLevel     string
	LogFormat    string
	LogFile      string
	ControlAddr  string
	TickInterval time.Duration
}

func LoadConfig() Config {
	return Config{
		SettingsPath: getEnv("POMODORO_SETTINGS", ""),
		LogLevel:     strings.ToLower(getEnv("POMODORO_LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("POMODORO_LOG_FORMAT", "text")),
		LogFile:      getEnv("POMODORO_LOG_FILE", ""),
		ControlAddr:  getEnv("POMODORO_CONTROL_ADDR", ""),
		TickInterval: getEnvDuration("POMODORO_TICK_INTERVAL", time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
