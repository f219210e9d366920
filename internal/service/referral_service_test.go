package service

import (
	"errors"
	"testing"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
)

func TestReferralCreditsReferrer(t *testing.T) {
	env := newTestEnv()
	referrerID := env.addUser(models.User{Username: "amaka", ReferralCode: "AMAK111111"})

	u, _, _, err := env.auth.Register("chidi", "password123", "chidi@example.com", "Chidi O", "AMAK111111")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	referrer, _ := env.store.GetByID(referrerID)
	if referrer.Balance != 1000 {
		t.Fatalf("referrer balance = %d, want 1000", referrer.Balance)
	}
	if referrer.ReferralCount != 1 {
		t.Fatalf("referral count = %d, want 1", referrer.ReferralCount)
	}
	refs, _ := env.referrals.ListByReferrer(referrerID)
	if len(refs) != 1 {
		t.Fatalf("referral rows = %d, want 1", len(refs))
	}
	if refs[0].Amount != 1000 {
		t.Fatalf("referral amount = %d, want 1000", refs[0].Amount)
	}
	if refs[0].ReferredID != u.ID {
		t.Fatalf("referred id = %d, want %d", refs[0].ReferredID, u.ID)
	}
	referred, _ := env.store.GetByID(u.ID)
	if referred.ReferredBy == nil || *referred.ReferredBy != referrerID {
		t.Fatal("referred_by not linked to referrer")
	}
	env.checkLedger(t, referrerID)
}

func TestReferralAmountIsSnapshot(t *testing.T) {
	env := newTestEnv()
	referrerID := env.addUser(models.User{Username: "amaka", ReferralCode: "AMAK111111"})

	if _, _, _, err := env.auth.Register("first", "password123", "a@b.com", "First", "AMAK111111"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := env.settings.Set(domain.SettingReferralAmount, "2500"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, _, _, err := env.auth.Register("second", "password123", "c@d.com", "Second", "AMAK111111"); err != nil {
		t.Fatalf("register: %v", err)
	}

	refs, _ := env.referrals.ListByReferrer(referrerID)
	if len(refs) != 2 {
		t.Fatalf("referral rows = %d, want 2", len(refs))
	}
	if refs[0].Amount != 1000 || refs[1].Amount != 2500 {
		t.Fatalf("amounts = %d,%d, want 1000,2500", refs[0].Amount, refs[1].Amount)
	}
	referrer, _ := env.store.GetByID(referrerID)
	if referrer.Balance != 3500 {
		t.Fatalf("referrer balance = %d, want 3500", referrer.Balance)
	}
	env.checkLedger(t, referrerID)
}

func TestReferralUnknownCodeIsNoOp(t *testing.T) {
	env := newTestEnv()
	u, _, _, err := env.auth.Register("chidi", "password123", "chidi@example.com", "Chidi O", "NOSUCHCODE")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	got, _ := env.store.GetByID(u.ID)
	if got.ReferredBy != nil {
		t.Fatal("referred_by set for unknown code")
	}
	if len(env.store.referrals) != 0 {
		t.Fatal("referral row created for unknown code")
	}
	if len(env.store.transactions) != 0 {
		t.Fatal("transaction created for unknown code")
	}
}

func TestReferralSelfCodeIsNoOp(t *testing.T) {
	env := newTestEnv()
	id := env.addUser(models.User{Username: "amaka", ReferralCode: "AMAK111111"})
	u, _ := env.store.GetByID(id)

	env.referrals.ProcessReferralCode("AMAK111111", u)

	got, _ := env.store.GetByID(id)
	if got.Balance != 0 || got.ReferralCount != 0 {
		t.Fatalf("self-referral changed account: balance=%d count=%d", got.Balance, got.ReferralCount)
	}
}

func TestRegisterAdminBootstrapCode(t *testing.T) {
	env := newTestEnv()
	referrerID := env.addUser(models.User{Username: "vesta", ReferralCode: domain.AdminBootstrapCode})

	u, _, _, err := env.auth.Register("boss", "password123", "boss@example.com", "Boss", domain.AdminBootstrapCode)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !u.IsAdmin {
		t.Fatal("bootstrap code did not grant admin")
	}
	// The bootstrap code is consumed as a role grant, never as a referral.
	referrer, _ := env.store.GetByID(referrerID)
	if referrer.Balance != 0 || referrer.ReferralCount != 0 {
		t.Fatal("bootstrap registration credited a referrer")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv()
	env.addUser(models.User{Username: "amaka", ReferralCode: "AMAK111111"})
	_, _, _, err := env.auth.Register("amaka", "password123", "x@y.com", "Amaka", "")
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("err = %v, want ErrUsernameExists", err)
	}
}

func TestRegisterReferralCodeFormat(t *testing.T) {
	env := newTestEnv()
	u, _, _, err := env.auth.Register("chidi", "password123", "chidi@example.com", "Chidi O", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(u.ReferralCode) != 10 {
		t.Fatalf("code length = %d, want 10", len(u.ReferralCode))
	}
	if u.ReferralCode[:4] != "CHID" {
		t.Fatalf("code prefix = %q, want CHID", u.ReferralCode[:4])
	}
	for _, r := range u.ReferralCode {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			t.Fatalf("code %q contains invalid character %q", u.ReferralCode, r)
		}
	}
}

func TestLoginBannedRejected(t *testing.T) {
	env := newTestEnv()
	u, _, _, err := env.auth.Register("chidi", "password123", "chidi@example.com", "Chidi O", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := env.auth.Login("chidi", "password123"); err != nil {
		t.Fatalf("login before ban: %v", err)
	}
	_ = env.store.SetBanned(u.ID, true)
	if _, _, _, err := env.auth.Login("chidi", "password123"); !errors.Is(err, ErrBanned) {
		t.Fatalf("err = %v, want ErrBanned", err)
	}
}
