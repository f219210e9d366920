package service

import (
	"errors"
	"testing"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
)

func TestAdvertisementSubmitRequiresUnlock(t *testing.T) {
	env := newTestEnv()
	locked := env.addUser(models.User{Username: "amaka", ReferralCode: "AMAK111111"})
	unlocked := env.addUser(models.User{Username: "bisi", ReferralCode: "BISI111111", AdvertisementEnabled: true})

	if _, err := env.ads.Submit(locked, "Shop sale", "Everything must go", "0801 234 5678"); !errors.Is(err, domain.ErrAdvertisementNotEnabled) {
		t.Fatalf("err = %v, want ErrAdvertisementNotEnabled", err)
	}
	ad, err := env.ads.Submit(unlocked, "Shop sale", "Everything must go", "0801 234 5678")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ad.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", ad.Status)
	}
}

func TestAdvertisementApproveIsTerminal(t *testing.T) {
	env := newTestEnv()
	id := env.addUser(models.User{Username: "bisi", ReferralCode: "BISI111111", AdvertisementEnabled: true})
	ad, _ := env.ads.Submit(id, "Shop sale", "Everything must go", "0801 234 5678")

	approved, err := env.ads.Approve(ad.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.StatusApproved || approved.ApprovedAt == nil {
		t.Fatalf("approved = %+v", approved)
	}
	if _, err := env.ads.Approve(ad.ID); !errors.Is(err, domain.ErrAlreadyProcessed) {
		t.Fatalf("second approve err = %v, want ErrAlreadyProcessed", err)
	}

	public, _ := env.ads.ListApproved()
	if len(public) != 1 {
		t.Fatalf("approved ads = %d, want 1", len(public))
	}
}

func TestAdvertisementReject(t *testing.T) {
	env := newTestEnv()
	id := env.addUser(models.User{Username: "bisi", ReferralCode: "BISI111111", AdvertisementEnabled: true})
	ad, _ := env.ads.Submit(id, "Shop sale", "Everything must go", "0801 234 5678")

	rejected, err := env.ads.Reject(ad.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.StatusRejected {
		t.Fatalf("status = %q, want rejected", rejected.Status)
	}
	public, _ := env.ads.ListApproved()
	if len(public) != 0 {
		t.Fatal("rejected ad is publicly listed")
	}
	if _, err := env.ads.Reject(ad.ID); !errors.Is(err, domain.ErrAlreadyProcessed) {
		t.Fatalf("second reject err = %v, want ErrAlreadyProcessed", err)
	}
}
