package handler

import (
	"net/http"
	"strconv"

	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups every admin-only operation: approval queues, user and
// product management, settings and broadcasts.
type AdminHandler struct {
	userStore     repository.UserStore
	productStore  repository.ProductStore
	withdrawalSvc *service.WithdrawalService
	paymentSvc    *service.PaymentService
	adSvc         *service.AdvertisementService
	orderSvc      *service.OrderService
	notifSvc      *service.NotificationService
	settings      *service.SettingsService
}

func NewAdminHandler(
	userStore repository.UserStore,
	productStore repository.ProductStore,
	withdrawalSvc *service.WithdrawalService,
	paymentSvc *service.PaymentService,
	adSvc *service.AdvertisementService,
	orderSvc *service.OrderService,
	notifSvc *service.NotificationService,
	settings *service.SettingsService,
) *AdminHandler {
	return &AdminHandler{
		userStore:     userStore,
		productStore:  productStore,
		withdrawalSvc: withdrawalSvc,
		paymentSvc:    paymentSvc,
		adSvc:         adSvc,
		orderSvc:      orderSvc,
		notifSvc:      notifSvc,
		settings:      settings,
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// decideRequest is the shared approve/reject body for all approval queues.
type decideRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userStore.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) SetUserBanned(banned bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := h.userStore.SetBanned(id, banned); err != nil {
			respondError(c, err)
			return
		}
		msg := "user unbanned"
		if banned {
			msg = "user banned"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

func (h *AdminHandler) ListWithdrawals(c *gin.Context) {
	ws, err := h.withdrawalSvc.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": ws})
}

func (h *AdminHandler) DecideWithdrawal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var (
		w   *models.Withdrawal
		err error
	)
	if req.Status == "approved" {
		w, err = h.withdrawalSvc.Approve(id)
	} else {
		w, err = h.withdrawalSvc.Reject(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *AdminHandler) ListPayments(c *gin.Context) {
	ps, err := h.paymentSvc.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": ps})
}

func (h *AdminHandler) DecidePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var (
		p   *models.Payment
		err error
	)
	if req.Status == "approved" {
		p, err = h.paymentSvc.Approve(id)
	} else {
		p, err = h.paymentSvc.Reject(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AdminHandler) ListAdvertisements(c *gin.Context) {
	ads, err := h.adSvc.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"advertisements": ads})
}

func (h *AdminHandler) DecideAdvertisement(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var (
		ad  *models.Advertisement
		err error
	)
	if req.Status == "approved" {
		ad, err = h.adSvc.Approve(id)
	} else {
		ad, err = h.adSvc.Reject(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderSvc.List(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.orderSvc.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type productRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         int64   `json:"price" binding:"required,min=1"`
	DiscountPrice *int64  `json:"discount_price"`
	Image         string  `json:"image" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	InStock       *bool   `json:"in_stock"`
	Rating        float64 `json:"rating"`
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Image:         req.Image,
		Category:      req.Category,
		InStock:       true,
		Rating:        req.Rating,
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	if p.Rating == 0 {
		p.Rating = 5
	}
	if err := h.productStore.Create(p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *int64   `json:"price"`
	DiscountPrice *int64   `json:"discount_price"`
	Image         *string  `json:"image"`
	Category      *string  `json:"category"`
	InStock       *bool    `json:"in_stock"`
	Rating        *float64 `json:"rating"`
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DiscountPrice != nil {
		fields["discount_price"] = *req.DiscountPrice
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.InStock != nil {
		fields["in_stock"] = *req.InStock
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}
	p, err := h.productStore.UpdateFields(id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

type updateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (h *AdminHandler) UpdateSetting(c *gin.Context) {
	var req updateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.Set(req.Key, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": req.Key, "value": req.Value})
}

type maintenanceRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *AdminHandler) SetMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value := "false"
	if *req.Enabled {
		value = "true"
	}
	if err := h.settings.Set(domain.SettingMaintenanceMode, value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance_mode": *req.Enabled})
}

type broadcastRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *AdminHandler) Broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := h.notifSvc.Broadcast(req.Title, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}
