package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AccountModel mirrors the 'accounts' table.
// Registry is written once on insert; updates omit the column.
type AccountModel struct {
	ID           uuid.UUID                        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Registry     string                           `gorm:"type:char(10);unique;not null"`
	PasswordHash string                           `gorm:"type:varchar(255);not null"`
	ProfileID    *uuid.UUID                       `gorm:"type:uuid;index"`
	Profile      *ProfileModel                    `gorm:"foreignKey:ProfileID;constraint:OnDelete:SET NULL"`
	Name         string                           `gorm:"type:varchar(255)"`
	Gender       string                           `gorm:"type:varchar(32)"`
	Email        string                           `gorm:"type:varchar(255)"`
	Phones       datatypes.JSONSlice[string]      `gorm:"type:jsonb;not null;default:'[]'"`
	Addresses    datatypes.JSONSlice[AddressJSON] `gorm:"type:jsonb;not null;default:'[]'"`
	BirthDate    *time.Time                       `gorm:"type:date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AddressJSON is one element of the accounts.addresses JSON column.
type AddressJSON struct {
	State        string `json:"state"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
}
