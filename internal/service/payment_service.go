package service

import (
	"fmt"
	"time"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// PaymentService handles fee-unlock requests. Nothing is debited when a
// request is created; the debit and the feature flag both land on approval.
type PaymentService struct {
	userStore    repository.UserStore
	paymentStore repository.PaymentStore
	ledger       *LedgerService
	settings     *SettingsService
	notifier     *NotificationService
}

func NewPaymentService(
	userStore repository.UserStore,
	paymentStore repository.PaymentStore,
	ledger *LedgerService,
	settings *SettingsService,
	notifier *NotificationService,
) *PaymentService {
	return &PaymentService{
		userStore:    userStore,
		paymentStore: paymentStore,
		ledger:       ledger,
		settings:     settings,
		notifier:     notifier,
	}
}

func (s *PaymentService) feeFor(paymentType string) (int64, error) {
	switch paymentType {
	case domain.PaymentTypeContactGain:
		return s.settings.ContactGainFee(), nil
	case domain.PaymentTypeAdvertisement:
		return s.settings.AdvertisementFee(), nil
	case domain.PaymentTypeWithdrawalBypass:
		return s.settings.WithdrawalBypassFee(), nil
	default:
		return 0, domain.ErrInvalidPaymentType
	}
}

// Create records a pending unlock request. The submitted amount must equal
// the current fee exactly; contact_gain and advertisement requests are
// rejected when the feature is already unlocked. withdrawal_bypass is always
// allowed since a bypass is consumed per withdrawal.
func (s *PaymentService) Create(userID uint, paymentType string, amount int64) (*models.Payment, error) {
	fee, err := s.feeFor(paymentType)
	if err != nil {
		return nil, err
	}
	if amount != fee {
		return nil, domain.ErrInvalidPaymentAmount
	}

	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	switch paymentType {
	case domain.PaymentTypeContactGain:
		if u.ContactGainActive() {
			return nil, domain.ErrContactGainActive
		}
	case domain.PaymentTypeAdvertisement:
		if u.AdvertisementEnabled {
			return nil, domain.ErrAdvertisementEnabled
		}
	}

	p := &models.Payment{
		UserID: userID,
		Type:   paymentType,
		Amount: amount,
		Status: domain.StatusPending,
	}
	if err := s.paymentStore.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Approve debits the fee and unlocks the feature in one pass under the
// account lock.
func (s *PaymentService) Approve(id uint) (*models.Payment, error) {
	p, err := s.paymentStore.GetByID(id)
	if err != nil {
		return nil, err
	}

	unlock := s.ledger.Lock(p.UserID)
	defer unlock()

	p, err = s.paymentStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}

	var description string
	switch p.Type {
	case domain.PaymentTypeContactGain:
		if err := s.ledger.SetContactGainStatus(p.UserID, domain.ContactGainActive); err != nil {
			return nil, err
		}
		description = "Contact gain activation fee"
	case domain.PaymentTypeAdvertisement:
		if err := s.ledger.SetAdvertisementEnabled(p.UserID, true); err != nil {
			return nil, err
		}
		description = "Advertisement registration fee"
	case domain.PaymentTypeWithdrawalBypass:
		description = "Withdrawal requirement bypass fee"
	default:
		return nil, domain.ErrInvalidPaymentType
	}

	if _, err := s.ledger.ApplyDelta(p.UserID, -p.Amount, p.Type, description,
		fmt.Sprintf(`{"paymentId":%d}`, p.ID)); err != nil {
		return nil, err
	}

	now := time.Now()
	p.Status = domain.StatusApproved
	p.ApprovedAt = &now
	if err := s.paymentStore.Update(p); err != nil {
		return nil, err
	}
	s.notifier.Notify(p.UserID, "Payment approved",
		fmt.Sprintf("Your %s payment of ₦%d has been approved.", p.Type, p.Amount))
	return p, nil
}

// Reject flips the status; no balance was held, so there is nothing to
// refund.
func (s *PaymentService) Reject(id uint) (*models.Payment, error) {
	p, err := s.paymentStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	p.Status = domain.StatusRejected
	if err := s.paymentStore.Update(p); err != nil {
		return nil, err
	}
	s.notifier.Notify(p.UserID, "Payment rejected",
		fmt.Sprintf("Your %s payment of ₦%d was rejected.", p.Type, p.Amount))
	return p, nil
}

// ActivateContactGainByReferrals is the free unlock path for users whose
// referral count has reached the referralsForContactGain threshold. No debit
// and no payment row.
func (s *PaymentService) ActivateContactGainByReferrals(userID uint) error {
	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if u.ContactGainActive() {
		return domain.ErrContactGainActive
	}
	if u.ReferralCount < s.settings.ReferralsForContactGain() {
		return domain.ErrInsufficientReferrals
	}
	return s.ledger.SetContactGainStatus(userID, domain.ContactGainActive)
}

func (s *PaymentService) ListByUser(userID uint) ([]models.Payment, error) {
	return s.paymentStore.ListByUser(userID)
}

func (s *PaymentService) List(status string) ([]models.Payment, error) {
	return s.paymentStore.List(status)
}
