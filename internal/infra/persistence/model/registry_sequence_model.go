package model

import "time"

// RegistrySequenceModel mirrors the 'registry_sequences' table, one counter row per year.
type RegistrySequenceModel struct {
	Year      int `gorm:"primaryKey;autoIncrement:false"`
	LastValue int `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrySequenceModel) TableName() string {
	return "registry_sequences"
}
