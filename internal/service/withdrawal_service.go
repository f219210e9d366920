package service

import (
	"fmt"
	"time"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// WithdrawalService implements the optimistic-debit payout flow: the balance
// is taken at request time, approval is bookkeeping only, rejection refunds
// exactly once.
type WithdrawalService struct {
	userStore       repository.UserStore
	withdrawalStore repository.WithdrawalStore
	ledger          *LedgerService
	settings        *SettingsService
	notifier        *NotificationService
}

func NewWithdrawalService(
	userStore repository.UserStore,
	withdrawalStore repository.WithdrawalStore,
	ledger *LedgerService,
	settings *SettingsService,
	notifier *NotificationService,
) *WithdrawalService {
	return &WithdrawalService{
		userStore:       userStore,
		withdrawalStore: withdrawalStore,
		ledger:          ledger,
		settings:        settings,
		notifier:        notifier,
	}
}

// Create validates the request and debits amount+fee immediately. bypassed
// waives the referral-count requirement only; every other check still applies.
func (s *WithdrawalService) Create(userID uint, amount int64, bypassed bool) (*models.Withdrawal, error) {
	unlock := s.ledger.Lock(userID)
	defer unlock()

	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !u.HasBankDetails() {
		return nil, domain.ErrBankDetailsMissing
	}
	if amount < s.settings.MinimumWithdrawal() {
		return nil, domain.ErrBelowMinimumWithdrawal
	}
	if !bypassed && u.ReferralCount < s.settings.MinReferralsForWithdrawal() {
		return nil, domain.ErrInsufficientReferrals
	}
	fee := s.settings.WithdrawalFee()
	if u.Balance < amount+fee {
		return nil, domain.ErrInsufficientBalance
	}

	if _, err := s.ledger.ApplyDelta(userID, -(amount + fee), domain.TxTypeWithdrawal,
		fmt.Sprintf("Withdrawal of ₦%d (fee: ₦%d)", amount, fee), ""); err != nil {
		return nil, err
	}

	w := &models.Withdrawal{
		UserID:        userID,
		Amount:        amount,
		Fee:           fee,
		Status:        domain.StatusPending,
		BankName:      u.BankName,
		AccountNumber: u.AccountNumber,
		AccountName:   u.AccountName,
		Bypassed:      bypassed,
	}
	if err := s.withdrawalStore.Create(w); err != nil {
		// Hand the money back; the debit already landed.
		_, _ = s.ledger.ApplyDelta(userID, amount+fee, domain.TxTypeRefund,
			"Refund for failed withdrawal request", "")
		return nil, err
	}
	return w, nil
}

// Approve marks a pending withdrawal paid out. The balance was already
// debited at creation, so the only side effect is the totalPayout counter.
func (s *WithdrawalService) Approve(id uint) (*models.Withdrawal, error) {
	w, err := s.withdrawalStore.GetByID(id)
	if err != nil {
		return nil, err
	}

	unlock := s.ledger.Lock(w.UserID)
	defer unlock()

	w, err = s.withdrawalStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	now := time.Now()
	w.Status = domain.StatusApproved
	w.ProcessedAt = &now
	if err := s.withdrawalStore.Update(w); err != nil {
		return nil, err
	}
	if err := s.settings.AddToTotalPayout(w.Amount); err != nil {
		return nil, err
	}
	s.notifier.Notify(w.UserID, "Withdrawal approved",
		fmt.Sprintf("Your withdrawal of ₦%d has been approved and is being processed.", w.Amount))
	return w, nil
}

// Reject returns the withdrawal to rejected and credits back amount+fee.
// The pending check under the account lock makes the refund exactly-once.
func (s *WithdrawalService) Reject(id uint) (*models.Withdrawal, error) {
	w, err := s.withdrawalStore.GetByID(id)
	if err != nil {
		return nil, err
	}

	unlock := s.ledger.Lock(w.UserID)
	defer unlock()

	w, err = s.withdrawalStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if w.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	now := time.Now()
	w.Status = domain.StatusRejected
	w.ProcessedAt = &now
	if err := s.withdrawalStore.Update(w); err != nil {
		return nil, err
	}
	if _, err := s.ledger.ApplyDelta(w.UserID, w.Amount+w.Fee, domain.TxTypeRefund,
		fmt.Sprintf("Refund for rejected withdrawal #%d", w.ID),
		fmt.Sprintf(`{"withdrawalId":%d}`, w.ID)); err != nil {
		return nil, err
	}
	s.notifier.Notify(w.UserID, "Withdrawal rejected",
		fmt.Sprintf("Your withdrawal of ₦%d was rejected. The amount and fee have been refunded.", w.Amount))
	return w, nil
}

func (s *WithdrawalService) ListByUser(userID uint) ([]models.Withdrawal, error) {
	return s.withdrawalStore.ListByUser(userID)
}

func (s *WithdrawalService) List(status string) ([]models.Withdrawal, error) {
	return s.withdrawalStore.List(status)
}
