package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is the append-only ledger entry. For every user the sum of
// amounts equals the current balance; rows are never mutated after creation.
type Transaction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Type        string         `gorm:"size:30;not null;index" json:"type"`
	Amount      int64          `gorm:"not null" json:"amount"` // positive = credit, negative = debit
	Description string         `gorm:"size:255;not null" json:"description"`
	Status      string         `gorm:"size:20;not null;default:'completed'" json:"status"`
	Metadata    string         `gorm:"type:text" json:"metadata"` // JSON
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
