package models

import (
	"time"

	"gorm.io/gorm"
)

type Advertisement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ContactInfo string         `gorm:"size:255;not null" json:"contact_info"`
	Status      string         `gorm:"size:20;not null;index;default:'pending'" json:"status"`
	ApprovedAt  *time.Time     `json:"approved_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Advertisement) TableName() string { return "advertisements" }
