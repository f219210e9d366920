package repository

import (
	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type AdvertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) *AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

var _ AdvertisementStore = (*AdvertisementRepository)(nil)

func (r *AdvertisementRepository) Create(a *models.Advertisement) error {
	return r.db.Create(a).Error
}

func (r *AdvertisementRepository) GetByID(id uint) (*models.Advertisement, error) {
	var a models.Advertisement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdvertisementRepository) Update(a *models.Advertisement) error {
	return r.db.Save(a).Error
}

func (r *AdvertisementRepository) List(status string) ([]models.Advertisement, error) {
	var list []models.Advertisement
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *AdvertisementRepository) ListByUser(userID uint) ([]models.Advertisement, error) {
	var list []models.Advertisement
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}
