package repository

import (
	"time"

	"naijavalue/internal/models"
)

// Store interfaces decouple the workflow services from gorm so tests can run
// against in-memory fakes. The gorm repositories below are the production
// implementations.

type UserStore interface {
	Create(u *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByReferralCode(code string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	IncrementReferralCount(id uint) error
	SetReferredBy(id, referrerID uint) error
	SetDailyBonusClaimed(id uint, at time.Time) error
	List() ([]models.User, error)
	SetBanned(id uint, banned bool) error
	Count() (int64, error)
}

type LedgerStore interface {
	// ApplyDelta adjusts the balance and appends the matching transaction
	// row in one storage transaction.
	ApplyDelta(userID uint, delta int64, txType, description, metadata string) (*models.Transaction, error)
	SetAdvertisementEnabled(userID uint, enabled bool) error
	SetContactGainStatus(userID uint, status string) error
}

type TransactionStore interface {
	ListByUser(userID uint) ([]models.Transaction, error)
}

type ReferralStore interface {
	Create(ref *models.Referral) error
	ListByReferrer(referrerID uint) ([]models.Referral, error)
}

type WithdrawalStore interface {
	Create(w *models.Withdrawal) error
	GetByID(id uint) (*models.Withdrawal, error)
	Update(w *models.Withdrawal) error
	List(status string) ([]models.Withdrawal, error)
	ListByUser(userID uint) ([]models.Withdrawal, error)
}

type PaymentStore interface {
	Create(p *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	Update(p *models.Payment) error
	List(status string) ([]models.Payment, error)
	ListByUser(userID uint) ([]models.Payment, error)
}

type AdvertisementStore interface {
	Create(a *models.Advertisement) error
	GetByID(id uint) (*models.Advertisement, error)
	Update(a *models.Advertisement) error
	List(status string) ([]models.Advertisement, error)
	ListByUser(userID uint) ([]models.Advertisement, error)
}

type ProductStore interface {
	Create(p *models.Product) error
	GetByID(id uint) (*models.Product, error)
	UpdateFields(id uint, fields map[string]interface{}) (*models.Product, error)
	List(category string) ([]models.Product, error)
}

type OrderStore interface {
	// CreateWithItems persists the order, its items, the balance debit and
	// the purchase transaction as one atomic unit.
	CreateWithItems(order *models.Order, items []models.OrderItem, debit *models.Transaction) error
	GetByID(id uint) (*models.Order, error)
	Items(orderID uint) ([]models.OrderItem, error)
	ListByUser(userID uint) ([]models.Order, error)
	List(status string) ([]models.Order, error)
	UpdateStatus(id uint, status string) (*models.Order, error)
}

type NotificationStore interface {
	Create(n *models.Notification) error
	ListForUser(userID uint) ([]models.Notification, error)
	MarkRead(id uint) error
}

type SettingStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	GetAll() ([]models.SystemSetting, error)
	SeedDefaults(defaults map[string]string) error
}
