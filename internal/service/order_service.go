package service

import (
	"fmt"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// OrderItemInput is one line of a cart at checkout.
type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// OrderService sells marketplace products against the account balance.
type OrderService struct {
	userStore    repository.UserStore
	productStore repository.ProductStore
	orderStore   repository.OrderStore
	ledger       *LedgerService
	notifier     *NotificationService
}

func NewOrderService(
	userStore repository.UserStore,
	productStore repository.ProductStore,
	orderStore repository.OrderStore,
	ledger *LedgerService,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		userStore:    userStore,
		productStore: productStore,
		orderStore:   orderStore,
		ledger:       ledger,
		notifier:     notifier,
	}
}

// PlaceOrder validates every line before writing anything, then persists the
// order, its items, the balance debit and the purchase transaction as one
// storage transaction. A failed order leaves no rows behind.
func (s *OrderService) PlaceOrder(userID uint, inputs []OrderItemInput) (*models.Order, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	unlock := s.ledger.Lock(userID)
	defer unlock()

	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}

	var total int64
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		p, err := s.productStore.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.InStock {
			return nil, domain.ErrOutOfStock
		}
		price := p.UnitPrice()
		total += price * int64(in.Quantity)
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Quantity:  in.Quantity,
			Price:     price,
		})
	}
	if u.Balance < total {
		return nil, domain.ErrInsufficientBalance
	}

	order := &models.Order{
		UserID:      userID,
		Status:      domain.OrderStatusPending,
		TotalAmount: total,
	}
	debit := &models.Transaction{
		UserID:      userID,
		Type:        domain.TxTypePurchase,
		Amount:      -total,
		Description: fmt.Sprintf("Purchase of %d product(s)", len(items)),
		Status:      domain.StatusCompleted,
	}
	if err := s.orderStore.CreateWithItems(order, items, debit); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order along pending/processing/shipped/delivered or
// to cancelled, and tells the buyer. Cancellation does not refund.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	switch status {
	case domain.OrderStatusPending, domain.OrderStatusProcessing,
		domain.OrderStatusShipped, domain.OrderStatusDelivered,
		domain.OrderStatusCancelled:
	default:
		return nil, domain.ErrInvalidStatus
	}
	order, err := s.orderStore.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if status != domain.OrderStatusPending {
		s.notifier.Notify(order.UserID, "Order update",
			fmt.Sprintf("Your order #%d is now %s.", order.ID, status))
	}
	return order, nil
}

func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotFound
	}
	items, err := s.orderStore.Items(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderStore.ListByUser(userID)
}

func (s *OrderService) List(status string) ([]models.Order, error) {
	return s.orderStore.List(status)
}
