package models

import (
	"time"

	"gorm.io/gorm"
)

// Withdrawal holds a payout request. The balance is debited amount+fee at
// creation, so approval has no balance effect and rejection must refund.
// Bank fields are snapshotted from the profile at request time.
type Withdrawal struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index" json:"user_id"`
	Amount        int64          `gorm:"not null" json:"amount"`
	Fee           int64          `gorm:"not null" json:"fee"`
	Status        string         `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	BankName      string         `gorm:"size:100;not null" json:"bank_name"`
	AccountNumber string         `gorm:"size:32;not null" json:"account_number"`
	AccountName   string         `gorm:"size:100;not null" json:"account_name"`
	Bypassed      bool           `gorm:"default:false" json:"bypassed"`
	ProcessedAt   *time.Time     `json:"processed_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Withdrawal) TableName() string { return "withdrawals" }
