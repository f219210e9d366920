package service

import (
	"time"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// AdvertisementService gates ad submission behind the advertisement unlock
// and runs the admin approval queue.
type AdvertisementService struct {
	userStore repository.UserStore
	adStore   repository.AdvertisementStore
	ledger    *LedgerService
	notifier  *NotificationService
}

func NewAdvertisementService(
	userStore repository.UserStore,
	adStore repository.AdvertisementStore,
	ledger *LedgerService,
	notifier *NotificationService,
) *AdvertisementService {
	return &AdvertisementService{userStore: userStore, adStore: adStore, ledger: ledger, notifier: notifier}
}

func (s *AdvertisementService) Submit(userID uint, title, description, contactInfo string) (*models.Advertisement, error) {
	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !u.AdvertisementEnabled {
		return nil, domain.ErrAdvertisementNotEnabled
	}
	ad := &models.Advertisement{
		UserID:      userID,
		Title:       title,
		Description: description,
		ContactInfo: contactInfo,
		Status:      domain.StatusPending,
	}
	if err := s.adStore.Create(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Approve publishes the ad and also flips the owner's advertisement unlock,
// covering accounts that were granted an ad slot directly by an admin.
func (s *AdvertisementService) Approve(id uint) (*models.Advertisement, error) {
	ad, err := s.adStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ad.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	now := time.Now()
	ad.Status = domain.StatusApproved
	ad.ApprovedAt = &now
	if err := s.adStore.Update(ad); err != nil {
		return nil, err
	}
	if err := s.ledger.SetAdvertisementEnabled(ad.UserID, true); err != nil {
		return nil, err
	}
	s.notifier.Notify(ad.UserID, "Advertisement approved",
		"Your advertisement \""+ad.Title+"\" is now live.")
	return ad, nil
}

func (s *AdvertisementService) Reject(id uint) (*models.Advertisement, error) {
	ad, err := s.adStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ad.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	ad.Status = domain.StatusRejected
	if err := s.adStore.Update(ad); err != nil {
		return nil, err
	}
	s.notifier.Notify(ad.UserID, "Advertisement rejected",
		"Your advertisement \""+ad.Title+"\" was not approved.")
	return ad, nil
}

func (s *AdvertisementService) ListApproved() ([]models.Advertisement, error) {
	return s.adStore.List(domain.StatusApproved)
}

func (s *AdvertisementService) List(status string) ([]models.Advertisement, error) {
	return s.adStore.List(status)
}

func (s *AdvertisementService) ListByUser(userID uint) ([]models.Advertisement, error) {
	return s.adStore.ListByUser(userID)
}
