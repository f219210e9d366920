package service

import (
	"strconv"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
)

// SettingsService reads tunable values per call (no caching; an admin edit
// takes effect on the next operation) and falls back to the seeded defaults
// when a key is missing or unparsable.
type SettingsService struct {
	store repository.SettingStore
}

func NewSettingsService(store repository.SettingStore) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) intValue(key string) int64 {
	val, err := s.store.Get(key)
	if err != nil || val == "" {
		val = domain.DefaultSettings()[key]
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		n, _ = strconv.ParseInt(domain.DefaultSettings()[key], 10, 64)
	}
	return n
}

func (s *SettingsService) ReferralAmount() int64 { return s.intValue(domain.SettingReferralAmount) }
func (s *SettingsService) MinimumWithdrawal() int64 { return s.intValue(domain.SettingMinimumWithdrawal) }
func (s *SettingsService) WithdrawalFee() int64 { return s.intValue(domain.SettingWithdrawalFee) }
func (s *SettingsService) WithdrawalBypassFee() int64 { return s.intValue(domain.SettingWithdrawalBypassFee) }
func (s *SettingsService) ContactGainFee() int64 { return s.intValue(domain.SettingContactGainFee) }
func (s *SettingsService) AdvertisementFee() int64 { return s.intValue(domain.SettingAdvertisementFee) }
func (s *SettingsService) DailyBonus() int64 { return s.intValue(domain.SettingDailyBonus) }
func (s *SettingsService) TotalPayout() int64 { return s.intValue(domain.SettingTotalPayout) }

func (s *SettingsService) MinReferralsForWithdrawal() int {
	return int(s.intValue(domain.SettingMinReferralsForWithdrawal))
}

func (s *SettingsService) ReferralsForContactGain() int {
	return int(s.intValue(domain.SettingReferralsForContactGain))
}

func (s *SettingsService) MaintenanceMode() bool {
	val, err := s.store.Get(domain.SettingMaintenanceMode)
	if err != nil {
		return false
	}
	return val == "true"
}

// AddToTotalPayout bumps the cumulative payout counter kept in settings.
func (s *SettingsService) AddToTotalPayout(amount int64) error {
	return s.store.Set(domain.SettingTotalPayout, strconv.FormatInt(s.TotalPayout()+amount, 10))
}

func (s *SettingsService) Set(key, value string) error {
	return s.store.Set(key, value)
}

func (s *SettingsService) All() ([]models.SystemSetting, error) {
	return s.store.GetAll()
}
