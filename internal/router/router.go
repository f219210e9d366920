package router

import (
	"time"

	"naijavalue/config"
	"naijavalue/internal/handler"
	"naijavalue/internal/middleware"
	"naijavalue/internal/repository"
	"naijavalue/internal/service"
	"naijavalue/internal/ws"
	"naijavalue/pkg/cloudinary"
	"naijavalue/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, log *logger.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	referralRepo := repository.NewReferralRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	hub := ws.NewHub()

	// Services
	ledgerSvc := service.NewLedgerService(ledgerRepo)
	settingsSvc := service.NewSettingsService(settingRepo)
	notifSvc := service.NewNotificationService(notificationRepo, hub, log)
	referralSvc := service.NewReferralService(userRepo, referralRepo, ledgerSvc, settingsSvc, log)
	authSvc := service.NewAuthService(cfg, userRepo, referralSvc)
	bonusSvc := service.NewBonusService(userRepo, ledgerSvc, settingsSvc)
	withdrawalSvc := service.NewWithdrawalService(userRepo, withdrawalRepo, ledgerSvc, settingsSvc, notifSvc)
	paymentSvc := service.NewPaymentService(userRepo, paymentRepo, ledgerSvc, settingsSvc, notifSvc)
	orderSvc := service.NewOrderService(userRepo, productRepo, orderRepo, ledgerSvc, notifSvc)
	adSvc := service.NewAdvertisementService(userRepo, adRepo, ledgerSvc, notifSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	meHandler := handler.NewMeHandler(userRepo, txRepo, authSvc, bonusSvc, paymentSvc)
	referralHandler := handler.NewReferralHandler(referralSvc)
	withdrawalHandler := handler.NewWithdrawalHandler(withdrawalSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	adHandler := handler.NewAdvertisementHandler(adSvc)
	productHandler := handler.NewProductHandler(productRepo)
	orderHandler := handler.NewOrderHandler(orderSvc)
	notificationHandler := handler.NewNotificationHandler(notifSvc)
	statsHandler := handler.NewStatsHandler(userRepo, settingsSvc)
	uploadHandler := handler.NewUploadHandler(cloud)
	adminHandler := handler.NewAdminHandler(userRepo, productRepo, withdrawalSvc, paymentSvc, adSvc, orderSvc, notifSvc, settingsSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	maintenanceMw := middleware.Maintenance(settingsSvc)
	bannedMw := middleware.NotBanned(userRepo)

	api := r.Group("/api")
	{
		// Auth endpoints stay reachable during maintenance so admins can
		// log in and turn it off.
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/refresh", authHandler.Refresh)
		api.GET("/auth/google", googleOAuthHandler.Redirect)
		api.GET("/auth/google/callback", googleOAuthHandler.Callback)

		public := api.Group("")
		public.Use(maintenanceMw)
		{
			public.GET("/stats", statsHandler.Stats)
			public.GET("/products", productHandler.List)
			public.GET("/products/:id", productHandler.Get)
			public.GET("/advertisements", adHandler.ListPublic)
		}

		user := api.Group("")
		user.Use(authMw, maintenanceMw, bannedMw)
		{
			user.GET("/user", meHandler.Me)
			user.GET("/profile", meHandler.Me)
			user.PATCH("/profile", meHandler.UpdateProfile)
			user.GET("/transactions", meHandler.Transactions)
			user.POST("/claim-bonus", meHandler.ClaimBonus)
			user.POST("/contact-gain", meHandler.ActivateContactGain)
			user.GET("/referrals", referralHandler.ListMine)
			user.POST("/withdrawals", withdrawalHandler.Create)
			user.GET("/withdrawals", withdrawalHandler.ListMine)
			user.POST("/payments", paymentHandler.Create)
			user.GET("/payments", paymentHandler.ListMine)
			user.POST("/advertisements", adHandler.Submit)
			user.GET("/my-advertisements", adHandler.ListMine)
			user.POST("/orders", orderHandler.Create)
			user.GET("/orders", orderHandler.ListMine)
			user.GET("/orders/:id", orderHandler.Get)
			user.GET("/notifications", notificationHandler.List)
			user.POST("/notifications/read/:id", notificationHandler.MarkRead)
		}

		// The ws handshake authenticates via query token inside the handler.
		api.GET("/ws/notifications", ws.UpgradeNotificationWS(&cfg.JWT, hub))

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/ban", adminHandler.SetUserBanned(true))
			admin.POST("/users/:id/unban", adminHandler.SetUserBanned(false))
			admin.GET("/withdrawals", adminHandler.ListWithdrawals)
			admin.PATCH("/withdrawals/:id", adminHandler.DecideWithdrawal)
			admin.GET("/payments", adminHandler.ListPayments)
			admin.PATCH("/payments/:id", adminHandler.DecidePayment)
			admin.GET("/advertisements", adminHandler.ListAdvertisements)
			admin.PATCH("/advertisements/:id", adminHandler.DecideAdvertisement)
			admin.GET("/orders", adminHandler.ListOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.POST("/products/image", uploadHandler.UploadProductImage)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PATCH("/settings", adminHandler.UpdateSetting)
			admin.POST("/maintenance", adminHandler.SetMaintenance)
			admin.POST("/broadcast", adminHandler.Broadcast)
		}
	}
	return r
}
