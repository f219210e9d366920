package database

import (
	"errors"

	"naijavalue/config"
	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"
	applog "naijavalue/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // Only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Referral{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.Payment{},
		&models.Advertisement{},
		&models.Notification{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.SystemSetting{},
	)
}

// Seed writes the default settings and the bootstrap admin account. Both are
// idempotent; existing rows are left alone.
func Seed(db *gorm.DB, cfg *config.Config, log *applog.Logger) error {
	settingRepo := repository.NewSettingRepository(db)
	if err := settingRepo.SeedDefaults(domain.DefaultSettings()); err != nil {
		return err
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.GetByUsername(cfg.Admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:          cfg.Admin.Username,
		Email:             cfg.Admin.Email,
		FullName:          "Administrator",
		PasswordHash:      string(hash),
		ReferralCode:      "ADMIN0000X",
		ContactGainStatus: domain.ContactGainInactive,
		IsAdmin:           true,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}
	log.WithField("username", admin.Username).Info("seeded admin account")
	return nil
}
