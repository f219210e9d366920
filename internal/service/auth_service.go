package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"naijavalue/config"
	"naijavalue/internal/auth"
	"naijavalue/internal/domain"
	"naijavalue/internal/models"
	"naijavalue/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameExists = errors.New("username already taken")
	ErrInvalidCreds   = errors.New("invalid username or password")
	ErrBanned         = errors.New("account is banned")
)

const referralCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type AuthService struct {
	cfg       *config.Config
	userStore repository.UserStore
	referrals *ReferralService
}

func NewAuthService(cfg *config.Config, userStore repository.UserStore, referrals *ReferralService) *AuthService {
	return &AuthService{cfg: cfg, userStore: userStore, referrals: referrals}
}

// generateReferralCode builds codes like JOHN3F9K2A: a 4-char uppercase
// username prefix plus 6 random characters, retried on the rare collision.
func (s *AuthService) generateReferralCode(username string) (string, error) {
	prefix := strings.ToUpper(username)
	prefix = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, prefix)
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	for attempt := 0; attempt < 5; attempt++ {
		suffix := make([]byte, 6)
		for i := range suffix {
			n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralCodeCharset))))
			if err != nil {
				return "", err
			}
			suffix[i] = referralCodeCharset[n.Int64()]
		}
		code := prefix + string(suffix)
		if _, err := s.userStore.GetByReferralCode(code); errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique referral code")
}

// Register creates the account, hands out tokens and, when a valid referral
// code was submitted, credits the referrer. The bootstrap code grants admin
// instead of crediting anyone.
func (s *AuthService) Register(username, password, email, fullName, referralCode string) (*models.User, string, string, error) {
	_, err := s.userStore.GetByUsername(username)
	if err == nil {
		return nil, "", "", ErrUsernameExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	code, err := s.generateReferralCode(username)
	if err != nil {
		return nil, "", "", err
	}
	u := &models.User{
		Username:          username,
		Email:             email,
		FullName:          fullName,
		PasswordHash:      string(hash),
		ReferralCode:      code,
		ContactGainStatus: domain.ContactGainInactive,
		IsAdmin:           referralCode == domain.AdminBootstrapCode,
	}
	if err := s.userStore.Create(u); err != nil {
		return nil, "", "", err
	}
	if !u.IsAdmin {
		s.referrals.ProcessReferralCode(referralCode, u)
	}
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return u, "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return u, access, "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(username, password string) (*models.User, string, string, error) {
	u, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if u.IsBanned {
		return nil, "", "", ErrBanned
	}
	access, _ := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
	refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return u, access, refresh, nil
}

// LoginWithGoogle finds or creates the account behind a verified Google
// identity. New accounts get a referral code but no referrer credit; there
// is no code to submit on this path.
func (s *AuthService) LoginWithGoogle(googleID, email, name string) (*models.User, string, string, bool, error) {
	u, err := s.userStore.GetByGoogleID(googleID)
	if err == nil {
		if u.IsBanned {
			return nil, "", "", false, ErrBanned
		}
		access, _ := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
		refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
		return u, access, refresh, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", false, err
	}

	username := strings.Split(email, "@")[0]
	if _, err := s.userStore.GetByUsername(username); err == nil {
		username = fmt.Sprintf("%s%d", username, time.Now().UnixNano()%100000)
	}
	code, err := s.generateReferralCode(username)
	if err != nil {
		return nil, "", "", false, err
	}
	gid := googleID
	u = &models.User{
		Username:          username,
		Email:             email,
		FullName:          name,
		ReferralCode:      code,
		ContactGainStatus: domain.ContactGainInactive,
		GoogleID:          &gid,
	}
	if err := s.userStore.Create(u); err != nil {
		return nil, "", "", false, err
	}
	access, _ := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
	refresh, _ := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return u, access, refresh, true, nil
}

func (s *AuthService) RefreshToken(refreshToken string) (access, refresh string, err error) {
	token, err := jwt.ParseWithClaims(refreshToken, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.RefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return "", "", auth.ErrInvalidToken
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	var userID uint
	fmt.Sscanf(claims.Subject, "%d", &userID)
	u, err := s.userStore.GetByID(userID)
	if err != nil {
		return "", "", err
	}
	if u.IsBanned {
		return "", "", ErrBanned
	}
	access, _ = auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Username, u.IsAdmin)
	refresh, _ = auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	return access, refresh, nil
}

// UpdateProfile lets a user change contact and bank details only. Balance,
// flags and referral fields are never writable from here.
func (s *AuthService) UpdateProfile(userID uint, fullName, email, bankName, accountNumber, accountName string) (*models.User, error) {
	fields := map[string]interface{}{}
	if fullName != "" {
		fields["full_name"] = fullName
	}
	if email != "" {
		fields["email"] = email
	}
	if bankName != "" {
		fields["bank_name"] = bankName
	}
	if accountNumber != "" {
		fields["account_number"] = accountNumber
	}
	if accountName != "" {
		fields["account_name"] = accountName
	}
	if len(fields) > 0 {
		if err := s.userStore.UpdateFields(userID, fields); err != nil {
			return nil, err
		}
	}
	return s.userStore.GetByID(userID)
}
