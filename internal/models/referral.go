package models

import (
	"time"

	"gorm.io/gorm"
)

// Referral records one successful referred signup. Amount is the bonus that
// was credited at creation time; later changes to the referralAmount setting
// never touch existing rows.
type Referral struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ReferrerID uint           `gorm:"not null;index" json:"referrer_id"`
	ReferredID uint           `gorm:"uniqueIndex;not null" json:"referred_id"` // each user can only be referred once
	Status     string         `gorm:"size:20;not null;default:'active'" json:"status"`
	Amount     int64          `gorm:"not null" json:"amount"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Referrer User `gorm:"foreignKey:ReferrerID" json:"-"`
	Referred User `gorm:"foreignKey:ReferredID" json:"referred_user,omitempty"`
}

func (Referral) TableName() string { return "referrals" }
