package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID       string `gorm:"primaryKey;size:64"`
	Name     string `gorm:"not null;size:255"`
	Email    string `gorm:"uniqueIndex;not null;size:255"`
	Phone    string `gorm:"size:64"`
	Password string `gorm:"not null;size:255"`

	Balance          int64 `gorm:"not null"` // Whole currency units
	DailyProfit      int64 `gorm:"not null;default:0"`
	TotalEarnings    int64 `gorm:"not null;default:0"`
	ReferralEarnings int64 `gorm:"not null;default:0"`

	VIPLevel         int `gorm:"not null;default:0"`
	VIPApprovedDate  *time.Time
	LastProfitDate   *time.Time
	VIPDaysCompleted int `gorm:"not null;default:0"`

	InvitationCode string `gorm:"uniqueIndex;not null;size:16"`
	InvitedBy      string `gorm:"size:255"`
	HasUsedInvite  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Owned rows, loaded with the aggregate and removed with it.
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Requests     []Request     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Referrals    []Referral    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
