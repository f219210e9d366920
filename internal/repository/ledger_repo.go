package repository

import (
	"naijavalue/internal/domain"
	"naijavalue/internal/models"

	"gorm.io/gorm"
)

// LedgerRepository is the only writer of the balance column and the
// transactions table.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

var _ LedgerStore = (*LedgerRepository)(nil)

// ApplyDelta adjusts the user's balance by delta (negative = debit) and
// appends the matching transaction row in the same storage transaction.
// Sufficiency for debits is the caller's responsibility.
func (r *LedgerRepository) ApplyDelta(userID uint, delta int64, txType, description, metadata string) (*models.Transaction, error) {
	txn := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      delta,
		Description: description,
		Status:      domain.StatusCompleted,
		Metadata:    metadata,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(txn).Error
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *LedgerRepository) SetAdvertisementEnabled(userID uint, enabled bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("advertisement_enabled", enabled).Error
}

func (r *LedgerRepository) SetContactGainStatus(userID uint, status string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("contact_gain_status", status).Error
}
