package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalclarity/internal/models"
)

func TestCreateDocument(t *testing.T) {
	db := setupTestDB(t)
	user, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	doc, err := CreateDocument(db, user.ID, "Lease Agreement", "original text", []byte(`{"summary":"s"}`))
	require.NoError(t, err)

	assert.NotZero(t, doc.ID)
	assert.Equal(t, "Lease Agreement", doc.Title)
	assert.Equal(t, user.ID, doc.UserID)
}

func TestCreateDocument_DefaultTitle(t *testing.T) {
	db := setupTestDB(t)
	user, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	doc, err := CreateDocument(db, user.ID, "", "original text", []byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, models.DefaultDocumentTitle, doc.Title)
}

func TestListDocumentsByUser_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)

	// Identical timestamps fall back to descending id order.
	titles := []string{"First", "Second", "Third"}
	now := time.Now().UTC()
	for _, title := range titles {
		doc := models.Document{
			Title:        title,
			OriginalText: "text",
			AnalysisJSON: []byte(`{}`),
			UserID:       user.ID,
			CreatedAt:    now,
		}
		require.NoError(t, db.Create(&doc).Error)
	}

	docs, err := ListDocumentsByUser(db, user.ID)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "Third", docs[0].Title)
	assert.Equal(t, "Second", docs[1].Title)
	assert.Equal(t, "First", docs[2].Title)
}

func TestListDocumentsByUser_OnlyOwnDocuments(t *testing.T) {
	db := setupTestDB(t)
	alice, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)
	bob, err := RegisterUser(db, "bob", "s3cret-pass")
	require.NoError(t, err)

	_, err = CreateDocument(db, alice.ID, "Alice Doc", "text", []byte(`{}`))
	require.NoError(t, err)
	_, err = CreateDocument(db, bob.ID, "Bob Doc", "text", []byte(`{}`))
	require.NoError(t, err)

	docs, err := ListDocumentsByUser(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Alice Doc", docs[0].Title)
}

func TestGetDocumentForUser(t *testing.T) {
	db := setupTestDB(t)
	alice, err := RegisterUser(db, "alice", "s3cret-pass")
	require.NoError(t, err)
	bob, err := RegisterUser(db, "bob", "s3cret-pass")
	require.NoError(t, err)

	created, err := CreateDocument(db, alice.ID, "Alice Doc", "text", []byte(`{"summary":"s"}`))
	require.NoError(t, err)

	doc, err := GetDocumentForUser(db, created.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Doc", doc.Title)
	assert.Equal(t, "text", doc.OriginalText)

	// Another user's id reads as not found, not forbidden.
	_, err = GetDocumentForUser(db, created.ID, bob.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = GetDocumentForUser(db, created.ID+100, alice.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestHealthCheck(t *testing.T) {
	db := setupTestDB(t)

	result := HealthCheck(db, AdapterStatus{Analysis: true})
	assert.Equal(t, "healthy", result.Status)
	assert.Equal(t, "ok", result.Database)
	assert.True(t, result.Adapters.Analysis)
	assert.False(t, result.Adapters.Extraction)
	assert.False(t, result.Adapters.Speech)
}
