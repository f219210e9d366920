package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminRequired checks the admin claim set by AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
