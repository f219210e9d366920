package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is a fee-unlock request (contact gain, advertisement, withdrawal
// bypass). Nothing is debited at creation; the debit and the feature flag
// both land on approval.
type Payment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	Type       string         `gorm:"size:30;not null;index" json:"type"`
	Amount     int64          `gorm:"not null" json:"amount"`
	Status     string         `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	ApprovedAt *time.Time     `json:"approved_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Payment) TableName() string { return "payments" }
