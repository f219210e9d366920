package service

import (
	"time"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// BonusService hands out the once-per-day login bonus.
type BonusService struct {
	userStore repository.UserStore
	ledger    *LedgerService
	settings  *SettingsService
	now       func() time.Time
}

func NewBonusService(userStore repository.UserStore, ledger *LedgerService, settings *SettingsService) *BonusService {
	return &BonusService{userStore: userStore, ledger: ledger, settings: settings, now: time.Now}
}

// ClaimDaily credits the dailyBonus setting once per server-local calendar
// day. Two claims on the same date fail regardless of the hours between them;
// a claim at 23:59 and another at 00:01 both succeed.
func (s *BonusService) ClaimDaily(userID uint) (*models.Transaction, error) {
	unlock := s.ledger.Lock(userID)
	defer unlock()

	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if u.DailyBonusLastClaimed != nil && sameDay(*u.DailyBonusLastClaimed, now) {
		return nil, domain.ErrBonusAlreadyClaimed
	}

	tx, err := s.ledger.ApplyDelta(userID, s.settings.DailyBonus(), domain.TxTypeBonus, "Daily bonus", "")
	if err != nil {
		return nil, err
	}
	if err := s.userStore.SetDailyBonusClaimed(userID, now); err != nil {
		return nil, err
	}
	return tx, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
