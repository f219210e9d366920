package middleware

import (
	"net/http"

	"naijavalue/internal/service"

	"github.com/gin-gonic/gin"
)

// Maintenance returns 503 for everyone except admins while maintenanceMode
// is on. Auth routes are left outside this middleware so admins can still
// log in to turn it off.
func Maintenance(settings *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if settings.MaintenanceMode() && !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "site is under maintenance, please check back later",
			})
			return
		}
		c.Next()
	}
}
