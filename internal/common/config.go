package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	SMTP      SMTPConfig
	Directory DirectoryConfig
	Upload    UploadConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// SMTPConfig holds outbound relay configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// DirectoryConfig holds identity-lookup configuration.
// Exactly one of Path (JSON file) or DSN (SQLite database) should be set.
type DirectoryConfig struct {
	Path string
	DSN  string
}

// UploadConfig holds upload handling configuration
type UploadConfig struct {
	MaxBytes int64
	TempDir  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
			Timeout:  getEnvAsDuration("SMTP_TIMEOUT", 15*time.Second),
		},
		Directory: DirectoryConfig{
			Path: getEnv("DIRECTORY_PATH", ""),
			DSN:  getEnv("DIRECTORY_DSN", ""),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 16<<20),
			TempDir:  getEnv("ARTIFACT_TEMP_DIR", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.SMTP.Username == "" {
		return NewAppError("CONFIG_ERROR", "SMTP_USERNAME is required", ErrInvalidInput)
	}
	if c.SMTP.Password == "" {
		return NewAppError("CONFIG_ERROR", "SMTP_PASSWORD is required", ErrInvalidInput)
	}
	if c.Directory.Path == "" && c.Directory.DSN == "" {
		return NewAppError("CONFIG_ERROR", "one of DIRECTORY_PATH or DIRECTORY_DSN is required", ErrInvalidInput)
	}
	return nil
}
