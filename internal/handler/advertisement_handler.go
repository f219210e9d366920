package handler

import (
	"net/http"

	"naijavalue/internal/middleware"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

type AdvertisementHandler struct {
	svc *service.AdvertisementService
}

func NewAdvertisementHandler(svc *service.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{svc: svc}
}

// ListPublic shows approved ads only.
func (h *AdvertisementHandler) ListPublic(c *gin.Context) {
	ads, err := h.svc.ListApproved()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertisements": ads})
}

type SubmitAdvertisementRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	ContactInfo string `json:"contact_info" binding:"required,max=255"`
}

func (h *AdvertisementHandler) Submit(c *gin.Context) {
	var req SubmitAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ad, err := h.svc.Submit(middleware.GetUserID(c), req.Title, req.Description, req.ContactInfo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (h *AdvertisementHandler) ListMine(c *gin.Context) {
	ads, err := h.svc.ListByUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertisements": ads})
}
