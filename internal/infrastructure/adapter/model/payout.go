package model

import (
	"time"
)

// Payout represents the database model for payout records
type Payout struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64    `gorm:"uniqueIndex;not null"`
	UserID        uint64    `gorm:"not null;index"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	TransferID    string    `gorm:"not null;size:255"`
	PayoutID      string    `gorm:"size:255"`
	Status        string    `gorm:"not null;size:50"`
	CreatedAt     time.Time `gorm:"not null"`

	// Define relationships
	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
	User        User        `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Payout
func (Payout) TableName() string {
	return "payouts"
}
