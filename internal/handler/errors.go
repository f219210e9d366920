package handler

import (
	"errors"
	"net/http"

	"naijavalue/internal/domain"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service errors onto HTTP statuses so every handler
// reports rejections the same way.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrBelowMinimumWithdrawal),
		errors.Is(err, domain.ErrBankDetailsMissing),
		errors.Is(err, domain.ErrInsufficientReferrals),
		errors.Is(err, domain.ErrBonusAlreadyClaimed),
		errors.Is(err, domain.ErrContactGainActive),
		errors.Is(err, domain.ErrAdvertisementEnabled),
		errors.Is(err, domain.ErrAdvertisementNotEnabled),
		errors.Is(err, domain.ErrInvalidPaymentType),
		errors.Is(err, domain.ErrInvalidPaymentAmount),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
