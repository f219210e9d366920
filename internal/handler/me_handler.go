package handler

import (
	"net/http"

	"naijavalue/internal/middleware"
	"naijavalue/internal/repository"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

// MeHandler serves the authenticated user's own profile, ledger and bonus
// endpoints.
type MeHandler struct {
	userStore  repository.UserStore
	txStore    repository.TransactionStore
	authSvc    *service.AuthService
	bonusSvc   *service.BonusService
	paymentSvc *service.PaymentService
}

func NewMeHandler(
	userStore repository.UserStore,
	txStore repository.TransactionStore,
	authSvc *service.AuthService,
	bonusSvc *service.BonusService,
	paymentSvc *service.PaymentService,
) *MeHandler {
	return &MeHandler{
		userStore:  userStore,
		txStore:    txStore,
		authSvc:    authSvc,
		bonusSvc:   bonusSvc,
		paymentSvc: paymentSvc,
	}
}

func (h *MeHandler) Me(c *gin.Context) {
	u, err := h.userStore.GetByID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type UpdateProfileRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email" binding:"omitempty,email"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.authSvc.UpdateProfile(middleware.GetUserID(c),
		req.FullName, req.Email, req.BankName, req.AccountNumber, req.AccountName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *MeHandler) Transactions(c *gin.Context) {
	txns, err := h.txStore.ListByUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}

func (h *MeHandler) ClaimBonus(c *gin.Context) {
	tx, err := h.bonusSvc.ClaimDaily(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Daily bonus claimed",
		"transaction": tx,
	})
}

// ActivateContactGain is the free unlock for users past the referral
// threshold; the paid route goes through payments.
func (h *MeHandler) ActivateContactGain(c *gin.Context) {
	if err := h.paymentSvc.ActivateContactGainByReferrals(middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact gain activated"})
}
