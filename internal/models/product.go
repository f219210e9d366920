package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Price         int64          `gorm:"not null" json:"price"`
	DiscountPrice *int64         `json:"discount_price"`
	Image         string         `gorm:"size:512;not null" json:"image"`
	Category      string         `gorm:"size:100;not null;index" json:"category"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	Rating        float64        `gorm:"default:5" json:"rating"`
	RatingCount   int            `gorm:"default:0" json:"rating_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// UnitPrice is the effective price at this moment (discount wins when set).
func (p *Product) UnitPrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

func (Product) TableName() string { return "products" }
