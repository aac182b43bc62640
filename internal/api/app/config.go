package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Issuer claim for session tokens
	DatabaseFile string // Path to SQLite database file (default: ./taskdesk.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	SessionTTL time.Duration // Lifetime of session access tokens (default: 24h)
	InviteTTL  time.Duration // Lifetime of invite tokens (default: 24h)

	// Admin seed: when set and no admin account exists yet, one is created
	// at startup, active, with these credentials.
	AdminName     string
	AdminEmail    string
	AdminPassword string

	DirectoryBaseURL string        // External user directory endpoint
	DirectoryTimeout time.Duration // HTTP timeout for directory fetches (default: 10s)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:       getEnvOrDefault("TASKDESK_ISSUER", "taskdesk-api"),
		DatabaseFile: getEnvOrDefault("TASKDESK_DATABASE_FILE", "taskdesk.db"),
		PepperFile:   getEnvOrDefault("TASKDESK_PEPPER_FILE", "pepper"),

		SessionTTL: getEnvDurationOrDefault("TASKDESK_SESSION_TTL", 24*time.Hour),
		InviteTTL:  getEnvDurationOrDefault("TASKDESK_INVITE_TTL", 24*time.Hour),

		AdminName:     getEnvOrDefault("ADMIN_NAME", "Admin"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		DirectoryBaseURL: getEnvOrDefault("DIRECTORY_BASE_URL", "https://randomuser.me/api"),
		DirectoryTimeout: getEnvDurationOrDefault("DIRECTORY_TIMEOUT", 10*time.Second),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
