package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionTokenModel mirrors the 'session_tokens' table used by the postgres token store.
type SessionTokenModel struct {
	Token     string    `gorm:"type:char(40);primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionTokenModel) TableName() string {
	return "session_tokens"
}
