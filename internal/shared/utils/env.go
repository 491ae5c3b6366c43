package utils

import (
	"os"
	"strconv"
)

// GetEnv returns the value of key or fallback when unset or empty
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt parses key as an int, returning fallback on absence or parse failure
func GetEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

// GetEnvFloat parses key as a float64, returning fallback on absence or parse failure
func GetEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(GetEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}
