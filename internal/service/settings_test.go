package service

import (
	"testing"

	"naijavalue/internal/domain"
)

func TestSettingsFallBackToDefaults(t *testing.T) {
	m := newMemStore()
	s := NewSettingsService(m)

	// Nothing seeded: every getter falls back to the shipped default.
	if got := s.ReferralAmount(); got != 1000 {
		t.Fatalf("ReferralAmount = %d, want 1000", got)
	}
	if got := s.MinimumWithdrawal(); got != 15000 {
		t.Fatalf("MinimumWithdrawal = %d, want 15000", got)
	}
	if got := s.MinReferralsForWithdrawal(); got != 20 {
		t.Fatalf("MinReferralsForWithdrawal = %d, want 20", got)
	}
	if s.MaintenanceMode() {
		t.Fatal("MaintenanceMode default should be off")
	}

	// Garbage values fall back too.
	_ = m.Set(domain.SettingDailyBonus, "not-a-number")
	if got := s.DailyBonus(); got != 500 {
		t.Fatalf("DailyBonus with garbage value = %d, want 500", got)
	}
}

func TestSettingsReadPerCall(t *testing.T) {
	m := newMemStore()
	_ = m.SeedDefaults(domain.DefaultSettings())
	s := NewSettingsService(m)

	if got := s.WithdrawalFee(); got != 100 {
		t.Fatalf("WithdrawalFee = %d, want 100", got)
	}
	_ = s.Set(domain.SettingWithdrawalFee, "250")
	if got := s.WithdrawalFee(); got != 250 {
		t.Fatalf("WithdrawalFee after update = %d, want 250", got)
	}
}

func TestTotalPayoutAccumulates(t *testing.T) {
	m := newMemStore()
	_ = m.SeedDefaults(domain.DefaultSettings())
	s := NewSettingsService(m)

	_ = s.AddToTotalPayout(15000)
	_ = s.AddToTotalPayout(20000)
	if got := s.TotalPayout(); got != 35000 {
		t.Fatalf("TotalPayout = %d, want 35000", got)
	}
}
