package model

import (
	"time"
)

// SchemaVersion records which data-shape migrations have been applied
type SchemaVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"uniqueIndex;not null;size:50"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
