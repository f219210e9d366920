package service

import (
	"fmt"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
	"naijavalue/pkg/logger"
)

// ReferralService credits referrers when a referred signup completes.
type ReferralService struct {
	userStore     repository.UserStore
	referralStore repository.ReferralStore
	ledger        *LedgerService
	settings      *SettingsService
	log           *logger.Logger
}

func NewReferralService(
	userStore repository.UserStore,
	referralStore repository.ReferralStore,
	ledger *LedgerService,
	settings *SettingsService,
	log *logger.Logger,
) *ReferralService {
	return &ReferralService{
		userStore:     userStore,
		referralStore: referralStore,
		ledger:        ledger,
		settings:      settings,
		log:           log,
	}
}

// ProcessReferralCode resolves the code submitted at registration and credits
// the referrer. An unknown or self-referencing code is a silent no-op so a
// typo never blocks a signup.
func (s *ReferralService) ProcessReferralCode(code string, newUser *models.User) {
	if code == "" {
		return
	}
	referrer, err := s.userStore.GetByReferralCode(code)
	if err != nil || referrer == nil || referrer.ID == newUser.ID {
		return
	}

	// Snapshot the bonus at signup time; later setting edits never touch
	// existing referral rows.
	amount := s.settings.ReferralAmount()

	if err := s.referralStore.Create(&models.Referral{
		ReferrerID: referrer.ID,
		ReferredID: newUser.ID,
		Status:     domain.StatusActive,
		Amount:     amount,
	}); err != nil {
		s.log.WithError(err).Warn("referral: failed to create referral record")
		return
	}
	if err := s.userStore.SetReferredBy(newUser.ID, referrer.ID); err != nil {
		s.log.WithError(err).Warn("referral: failed to link referred user")
	}
	if err := s.userStore.IncrementReferralCount(referrer.ID); err != nil {
		s.log.WithError(err).Warn("referral: failed to bump referral count")
	}

	unlock := s.ledger.Lock(referrer.ID)
	defer unlock()
	if _, err := s.ledger.ApplyDelta(referrer.ID, amount, domain.TxTypeReferral,
		fmt.Sprintf("Referral bonus for inviting %s", newUser.Username),
		fmt.Sprintf(`{"referredUserId":%d}`, newUser.ID)); err != nil {
		s.log.WithError(err).Error("referral: failed to credit referrer")
	}
}

func (s *ReferralService) ListByReferrer(referrerID uint) ([]models.Referral, error) {
	return s.referralStore.ListByReferrer(referrerID)
}
