package middleware

import (
	"net/http"
	"strings"

	"acututor/services"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and resolves it to a live user before any
// handler that touches per-user state runs. Every failure mode (missing or
// malformed header, bad signature, expired token, deleted user) yields the
// same generic 401.
func Auth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := authService.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := authService.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
}
