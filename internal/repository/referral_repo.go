package repository

import (
	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

var _ ReferralStore = (*ReferralRepository)(nil)

func (r *ReferralRepository) Create(ref *models.Referral) error {
	return r.db.Create(ref).Error
}

// ListByReferrer returns all referrals made by a user, referred user
// preloaded, newest first.
func (r *ReferralRepository) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	var list []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).
		Preload("Referred").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
