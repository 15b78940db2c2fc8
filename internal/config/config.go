package config

import (
	"fmt"
	"os"
	"strconv"

	"google.golang.org/api/option"
)

// DefaultMaxUploadSize bounds uploaded document images (10MiB).
const DefaultMaxUploadSize = 10 * 1024 * 1024

// InsecureSessionSecret is the development fallback used when
// SESSION_SECRET is not set. Startup warns loudly when it is in effect.
const InsecureSessionSecret = "dev-only-insecure-key-change-this"

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port          string
	SessionSecret string
	MaxUploadSize int
	UploadDir     string

	// Database configuration
	DBType            string // sqlite, mysql, postgres, sqlserver
	DBPath            string // sqlite file path
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Google Cloud configuration
	GCPProjectID             string
	GCPLocation              string
	GoogleServiceAccountJSON string
	GoogleCredentialsFile    string
	GeminiAPIKey             string
	GeminiModel              string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Warnings collected during load, reported once logging is up.
	Warnings []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                     getEnv("PORT", "3000"),
		SessionSecret:            getEnv("SESSION_SECRET", ""),
		MaxUploadSize:            getEnvAsInt("MAX_UPLOAD_SIZE", DefaultMaxUploadSize),
		UploadDir:                getEnv("UPLOAD_DIR", "temp_uploads"),
		DBType:                   getEnv("DB_TYPE", "sqlite"),
		DBPath:                   getEnv("DB_PATH", "database.db"),
		DBHost:                   getEnv("DB_HOST", "localhost"),
		DBPort:                   getEnv("DB_PORT", ""),
		DBDatabase:               getEnv("DB_DATABASE", ""),
		DBUser:                   getEnv("DB_USER", ""),
		DBPassword:               getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:        getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		GCPProjectID:             getEnv("GCP_PROJECT_ID", ""),
		GCPLocation:              getEnv("GCP_LOCATION", "us-central1"),
		GoogleServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleCredentialsFile:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GeminiAPIKey:             getEnv("GEMINI_API_KEY", ""),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "console"),
		LogOutput:                getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = InsecureSessionSecret
		cfg.Warnings = append(cfg.Warnings,
			"SESSION_SECRET not set, using insecure development default")
	}
	if !cfg.HasGoogleCredentials() {
		cfg.Warnings = append(cfg.Warnings,
			"no Google Cloud credentials configured, OCR and text-to-speech are disabled")
	}
	if !cfg.HasGenerativeModel() {
		cfg.Warnings = append(cfg.Warnings,
			"neither GEMINI_API_KEY nor GCP_PROJECT_ID set, document analysis is disabled")
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBType {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for sqlite")
		}
	case "mysql", "mariadb", "postgres", "postgresql", "sqlserver", "mssql":
		if c.DBDatabase == "" {
			return fmt.Errorf("DB_DATABASE is required for %s", c.DBType)
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required for %s", c.DBType)
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.DBType)
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	return nil
}

// HasGoogleCredentials reports whether a credential source for the Google
// Cloud clients (Vision, Text-to-Speech) is configured.
func (c *Config) HasGoogleCredentials() bool {
	return c.GoogleServiceAccountJSON != "" || c.GoogleCredentialsFile != ""
}

// HasGenerativeModel reports whether the analysis adapter can be constructed.
func (c *Config) HasGenerativeModel() bool {
	return c.GeminiAPIKey != "" || c.GCPProjectID != ""
}

// GoogleClientOptions returns client options carrying the configured
// credentials, inline JSON taking precedence over a key file path.
func (c *Config) GoogleClientOptions() []option.ClientOption {
	if c.GoogleServiceAccountJSON != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(c.GoogleServiceAccountJSON))}
	}
	if c.GoogleCredentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(c.GoogleCredentialsFile)}
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
