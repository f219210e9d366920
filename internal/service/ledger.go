package service

import (
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// LedgerService is the single mutation path for balances and feature flags.
// It does not gate negative-resulting deltas; callers verify sufficiency
// while holding the account lock.
type LedgerService struct {
	store repository.LedgerStore
	locks *accountLocks
}

func NewLedgerService(store repository.LedgerStore) *LedgerService {
	return &LedgerService{store: store, locks: newAccountLocks()}
}

// Lock serializes all balance/flag work for one account. The returned func
// releases the lock.
func (s *LedgerService) Lock(userID uint) func() {
	m := s.locks.get(userID)
	m.Lock()
	return m.Unlock
}

// ApplyDelta adjusts the balance by delta (negative = debit) and appends the
// matching transaction row atomically.
func (s *LedgerService) ApplyDelta(userID uint, delta int64, txType, description, metadata string) (*models.Transaction, error) {
	return s.store.ApplyDelta(userID, delta, txType, description, metadata)
}

func (s *LedgerService) SetAdvertisementEnabled(userID uint, enabled bool) error {
	return s.store.SetAdvertisementEnabled(userID, enabled)
}

func (s *LedgerService) SetContactGainStatus(userID uint, status string) error {
	return s.store.SetContactGainStatus(userID, status)
}
