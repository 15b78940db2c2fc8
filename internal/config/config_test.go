package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SESSION_SECRET", "DB_TYPE", "DB_PATH", "MAX_UPLOAD_SIZE", "GEMINI_MODEL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "database.db", cfg.DBPath)
	assert.Equal(t, DefaultMaxUploadSize, cfg.MaxUploadSize)
	assert.Equal(t, "temp_uploads", cfg.UploadDir)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "info", cfg.LogLevel)

	// No secret set: insecure fallback plus a startup warning.
	assert.Equal(t, InsecureSessionSecret, cfg.SessionSecret)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_SECRET", "a-real-secret")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "a-real-secret", cfg.SessionSecret)
	assert.Equal(t, 1048576, cfg.MaxUploadSize)
	assert.True(t, cfg.HasGenerativeModel())
}

func TestLoad_UnsupportedDBType(t *testing.T) {
	t.Setenv("DB_TYPE", "oracle")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ServerDBRequiresDatabaseAndUser(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("DB_DATABASE", "legalclarity")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("DB_USER", "app")
	_, err = Load()
	assert.NoError(t, err)
}

func TestHasGoogleCredentials(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasGoogleCredentials())

	cfg.GoogleCredentialsFile = "/etc/creds.json"
	assert.True(t, cfg.HasGoogleCredentials())

	cfg = &Config{GoogleServiceAccountJSON: `{"type":"service_account"}`}
	assert.True(t, cfg.HasGoogleCredentials())
}

func TestGoogleClientOptions(t *testing.T) {
	cfg := &Config{}
	assert.Nil(t, cfg.GoogleClientOptions())

	// Inline JSON wins over a file path.
	cfg = &Config{
		GoogleServiceAccountJSON: `{"type":"service_account"}`,
		GoogleCredentialsFile:    "/etc/creds.json",
	}
	assert.Len(t, cfg.GoogleClientOptions(), 1)
}
