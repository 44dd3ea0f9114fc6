package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table.
type ProfileModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                      `gorm:"type:varchar(255);unique;not null"`
	Slug        string                      `gorm:"type:varchar(255);unique;not null"`
	Permissions datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
