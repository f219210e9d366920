package handler

import (
	"net/http"

	"naijavalue/internal/middleware"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	svc *service.ReferralService
}

func NewReferralHandler(svc *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{svc: svc}
}

func (h *ReferralHandler) ListMine(c *gin.Context) {
	refs, err := h.svc.ListByReferrer(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrals": refs})
}
