package handler

import (
	"net/http"

	"naijavalue/internal/middleware"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type CreatePaymentRequest struct {
	Type   string `json:"type" binding:"required,oneof=contact_gain advertisement withdrawal_bypass"`
	Amount int64  `json:"amount" binding:"required,min=1"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.Create(middleware.GetUserID(c), req.Type, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	ps, err := h.svc.ListByUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": ps})
}
