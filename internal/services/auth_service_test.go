package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"legalclarity/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.User{}, &models.Document{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestRegisterUser(t *testing.T) {
	db := setupTestDB(t)

	user, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash, "password must not be stored in plaintext")
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterUser(db, "alice", "first")
	require.NoError(t, err)

	_, err = RegisterUser(db, "alice", "second")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterUser_MissingFields(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterUser(db, "", "password")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = RegisterUser(db, "alice", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = RegisterUser(db, "   ", "password")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestVerifyUser(t *testing.T) {
	db := setupTestDB(t)

	registered, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	user, err := VerifyUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestVerifyUser_WrongPassword(t *testing.T) {
	db := setupTestDB(t)

	_, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = VerifyUser(db, "alice", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyUser_UnknownUsername(t *testing.T) {
	db := setupTestDB(t)

	_, err := VerifyUser(db, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	db := setupTestDB(t)

	registered, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	user, err := GetUserByID(db, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = GetUserByID(db, registered.ID+100)
	assert.Error(t, err)
}
