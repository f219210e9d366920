package repository

import (
	"time"

	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ UserStore = (*UserRepository)(nil)

func (r *UserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByReferralCode(code string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("referral_code = ?", code).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByGoogleID(googleID string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("google_id = ?", googleID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateFields updates only the given columns; balance is never touched here
// (that is the ledger's job).
func (r *UserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) IncrementReferralCount(id uint) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("referral_count", gorm.Expr("referral_count + 1")).Error
}

func (r *UserRepository) SetReferredBy(id, referrerID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("referred_by", referrerID).Error
}

func (r *UserRepository) SetDailyBonusClaimed(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("daily_bonus_last_claimed", at).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var list []models.User
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *UserRepository) SetBanned(id uint, banned bool) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_banned", banned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Count(&n).Error
	return n, err
}
