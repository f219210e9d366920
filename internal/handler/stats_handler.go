package handler

import (
	"net/http"

	"naijavalue/internal/repository"
	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the public landing-page counters.
type StatsHandler struct {
	userStore repository.UserStore
	settings  *service.SettingsService
}

func NewStatsHandler(userStore repository.UserStore, settings *service.SettingsService) *StatsHandler {
	return &StatsHandler{userStore: userStore, settings: settings}
}

func (h *StatsHandler) Stats(c *gin.Context) {
	total, err := h.userStore.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_users":  total,
		"total_payout": h.settings.TotalPayout(),
		"daily_bonus":  h.settings.DailyBonus(),
	})
}
