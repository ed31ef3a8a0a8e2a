package model

import (
	"time"
)

// Request represents the database model for admin-decided requests.
// The three kinds share one table; kind-specific columns stay zero
// for the others.
type Request struct {
	ID     string    `gorm:"primaryKey;size:64"`
	UserID string    `gorm:"not null;index;size:64"`
	Kind   string    `gorm:"not null;index;size:20"`
	Amount int64     `gorm:"not null"`
	Date   time.Time `gorm:"not null"`
	Status string    `gorm:"not null;index;size:20"`

	ProofRef string `gorm:"size:255"`

	Phone   string `gorm:"size:64"`
	Network string `gorm:"size:64"`

	Level         int `gorm:"not null;default:0"`
	DaysRemaining int `gorm:"not null;default:0"`
}

// TableName specifies the table name for Request
func (Request) TableName() string {
	return "requests"
}
