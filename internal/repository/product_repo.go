package repository

import (
	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ProductStore = (*ProductRepository)(nil)

func (r *ProductRepository) Create(p *models.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id uint) (*models.Product, error) {
	var p models.Product
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) UpdateFields(id uint, fields map[string]interface{}) (*models.Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(p).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *ProductRepository) List(category string) ([]models.Product, error) {
	var list []models.Product
	q := r.db.Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&list).Error
	return list, err
}
