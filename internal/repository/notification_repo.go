package repository

import (
	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

var _ NotificationStore = (*NotificationRepository)(nil)

func (r *NotificationRepository) Create(n *models.Notification) error {
	return r.db.Create(n).Error
}

// ListForUser returns the user's own notifications plus global broadcasts,
// newest first.
func (r *NotificationRepository) ListForUser(userID uint) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.Where("user_id = ? OR is_global = ?", userID, true).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
