package repository

import (
	"fmt"

	"naijavalue/internal/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ OrderStore = (*OrderRepository)(nil)

// CreateWithItems persists the order, its item lines, the buyer's balance
// debit and the purchase transaction as one storage transaction, so a failed
// step leaves no partial writes behind.
func (r *OrderRepository) CreateWithItems(order *models.Order, items []models.OrderItem, debit *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		res := tx.Model(&models.User{}).
			Where("id = ?", order.UserID).
			UpdateColumn("balance", gorm.Expr("balance - ?", order.TotalAmount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if debit.Metadata == "" {
			debit.Metadata = fmt.Sprintf(`{"orderId":%d}`, order.ID)
		}
		return tx.Create(debit).Error
	})
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Items(orderID uint) ([]models.OrderItem, error) {
	var list []models.OrderItem
	err := r.db.Where("order_id = ?", orderID).Preload("Product").Find(&list).Error
	return list, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var list []models.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *OrderRepository) List(status string) ([]models.Order, error) {
	var list []models.Order
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *OrderRepository) UpdateStatus(id uint, status string) (*models.Order, error) {
	o, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := r.db.Model(o).Update("status", status).Error; err != nil {
		return nil, err
	}
	return o, nil
}
