package model

import (
	"time"
)

// Admin represents the database model for administrator accounts
type Admin struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"uniqueIndex;not null;size:255"`
	Password  string    `gorm:"not null;size:255"`
	Name      string    `gorm:"not null;size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
