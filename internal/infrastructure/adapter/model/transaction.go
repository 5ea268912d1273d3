package model

import (
	"time"
)

// Transaction represents the database model for ledger transactions.
// UserID is zero for platform-level entries such as recharges.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Type          string    `gorm:"not null;size:50;index"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	Status        string    `gorm:"not null;size:50;index"`
	ExternalID    string    `gorm:"size:255;index"`
	UserID        uint64    `gorm:"not null;default:0;index"`
	Description   string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
