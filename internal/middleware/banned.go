package middleware

import (
	"net/http"

	"naijavalue/internal/repository"

	"github.com/gin-gonic/gin"
)

// NotBanned reloads the user row on each request so a ban takes effect
// immediately instead of at token expiry.
func NotBanned(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetByID(GetUserID(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account not found"})
			return
		}
		if u.IsBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is banned"})
			return
		}
		c.Next()
	}
}
