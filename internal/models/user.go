package models

import (
	"time"

	"naijavalue/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	Username              string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email                 string         `gorm:"size:255;not null" json:"email"`
	FullName              string         `gorm:"size:255" json:"full_name"`
	PasswordHash          string         `gorm:"size:255" json:"-"`
	Balance               int64          `gorm:"not null;default:0" json:"balance"` // whole naira
	ReferralCode          string         `gorm:"uniqueIndex;size:20;not null" json:"referral_code"`
	ReferredBy            *uint          `gorm:"index" json:"referred_by"`
	ReferralCount         int            `gorm:"not null;default:0" json:"referral_count"`
	BankName              string         `gorm:"size:100" json:"bank_name"`
	AccountNumber         string         `gorm:"size:32" json:"account_number"`
	AccountName           string         `gorm:"size:100" json:"account_name"`
	DailyBonusLastClaimed *time.Time     `json:"daily_bonus_last_claimed"`
	IsAdmin               bool           `gorm:"default:false" json:"is_admin"`
	IsBanned              bool           `gorm:"default:false;index" json:"is_banned"`
	AdvertisementEnabled  bool           `gorm:"default:false" json:"advertisement_enabled"`
	ContactGainStatus     string         `gorm:"size:20;not null;default:'inactive'" json:"contact_gain_status"`
	GoogleID              *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for password signups (avoids duplicate '' on unique index)
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) HasBankDetails() bool {
	return u.BankName != "" && u.AccountNumber != "" && u.AccountName != ""
}

func (u *User) ContactGainActive() bool {
	return u.ContactGainStatus == domain.ContactGainActive
}
