// Package config provides helpers for reading configuration values from
// environment variables with sensible defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of the environment variable or the default
// if the variable is unset or empty.
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns the integer value of the environment variable or the
// default if the variable is unset or cannot be parsed.
func GetEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil {
		slog.Warn("invalid integer in environment variable, using default",
			slog.String("key", key),
			slog.String("value", value),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvFloat returns the float value of the environment variable or the
// default if the variable is unset or cannot be parsed.
func GetEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("invalid float in environment variable, using default",
			slog.String("key", key),
			slog.String("value", value),
			slog.Float64("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvBool returns the boolean value of the environment variable or the
// default if the variable is unset or cannot be parsed.
// Accepted values are the ones strconv.ParseBool understands.
func GetEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment variable, using default",
			slog.String("key", key),
			slog.String("value", value),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return parsed
}

// GetEnvDuration returns the duration value of the environment variable or
// the default if the variable is unset or cannot be parsed.
// Values use Go duration syntax such as "30s" or "1m30s".
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment variable, using default",
			slog.String("key", key),
			slog.String("value", value),
			slog.Duration("default", defaultValue))
		return defaultValue
	}
	return parsed
}
