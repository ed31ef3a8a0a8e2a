package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID        string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"not null;index;size:64"`
	RequestID string    `gorm:"index;size:64"`
	Type      string    `gorm:"not null;size:255"`
	Amount    int64     `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
	Status    string    `gorm:"not null;size:50"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
