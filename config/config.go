// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all client configuration.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	Log     LogConfig
}

// APIConfig holds remote API connection settings.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// StorageConfig holds on-device storage settings.
type StorageConfig struct {
	Dir string
}

// CachePath returns the path of the offline cache database.
func (c StorageConfig) CachePath() string {
	return filepath.Join(c.Dir, "cache.db")
}

// VaultPath returns the path of the encrypted token vault.
func (c StorageConfig) VaultPath() string {
	return filepath.Join(c.Dir, "tokens.vault")
}

// SessionConfig holds session handling settings.
type SessionConfig struct {
	// RefreshSkew is how far ahead of access token expiry a refresh is
	// triggered.
	RefreshSkew time.Duration
	// DeviceSecret encrypts the token vault at rest.
	DeviceSecret string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   getEnv("MEETCUTE_API_URL", "https://api.meetcute.app"),
			Timeout:   getEnvAsDuration("MEETCUTE_API_TIMEOUT", 10*time.Second),
			UserAgent: getEnv("MEETCUTE_USER_AGENT", "meetcute-client/1.0"),
		},
		Storage: StorageConfig{
			Dir: getEnv("MEETCUTE_STORAGE_DIR", defaultStorageDir()),
		},
		Session: SessionConfig{
			RefreshSkew:  getEnvAsDuration("MEETCUTE_REFRESH_SKEW", 2*time.Minute),
			DeviceSecret: getEnv("MEETCUTE_DEVICE_SECRET", "dev-only-device-secret"),
		},
		Log: LogConfig{
			Level:      getEnv("MEETCUTE_LOG_LEVEL", "info"),
			File:       getEnv("MEETCUTE_LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("MEETCUTE_LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvAsInt("MEETCUTE_LOG_MAX_BACKUPS", 3),
		},
	}
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".meetcute"
	}
	return filepath.Join(home, ".meetcute")
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
