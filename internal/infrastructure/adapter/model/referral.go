package model

import (
	"time"
)

// Referral represents the database model for an inviter's referral
// record. Email names the referee and is not a foreign key: deleting
// the referee leaves the row dangling on purpose.
type Referral struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        string    `gorm:"not null;index;size:64"`
	Email         string    `gorm:"not null;size:255"`
	Date          time.Time `gorm:"not null"`
	Bonus         int64     `gorm:"not null;default:0"`
	LastBonusDate *time.Time
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
