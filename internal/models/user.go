package models

import (
	"time"
)

// User represents a registered account. The password hash is a bcrypt
// digest and is never serialized to clients.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
