package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"legalclarity/internal/models"
)

// ErrDocumentNotFound is returned when a document does not exist or is not
// owned by the requesting user. The two cases are not distinguished.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentSummary is the dashboard listing shape.
type DocumentSummary struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
}

// CreateDocument persists one analyzed document for its owning user.
func CreateDocument(db *gorm.DB, userID uint64, title, originalText string, analysisJSON []byte) (*models.Document, error) {
	if title == "" {
		title = models.DefaultDocumentTitle
	}

	doc := models.Document{
		Title:        title,
		OriginalText: originalText,
		AnalysisJSON: analysisJSON,
		UserID:       userID,
	}
	if err := db.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return &doc, nil
}

// ListDocumentsByUser returns the user's documents newest first.
func ListDocumentsByUser(db *gorm.DB, userID uint64) ([]DocumentSummary, error) {
	var docs []DocumentSummary
	err := db.Model(&models.Document{}).
		Select("id", "created_at", "title").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// GetDocumentForUser fetches one document with the ownership check built
// into the lookup, so a foreign id reads as not found.
func GetDocumentForUser(db *gorm.DB, docID, userID uint64) (*models.Document, error) {
	var doc models.Document
	err := db.Where("id = ? AND user_id = ?", docID, userID).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}
