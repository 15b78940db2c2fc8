package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultDocumentTitle is used when the analysis yields no title.
const DefaultDocumentTitle = "Untitled Document"

// Document is one analyzed legal document. Rows are written exactly once
// at analysis time and never updated or deleted; AnalysisJSON stores the
// structured analysis verbatim.
type Document struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement"`
	Title        string         `gorm:"size:512;not null"`
	OriginalText string         `gorm:"type:text"`
	AnalysisJSON datatypes.JSON `gorm:"type:json"`
	UserID       uint64         `gorm:"not null;index"`
	User         User           `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `gorm:"index"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
