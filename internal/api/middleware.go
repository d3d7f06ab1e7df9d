package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kurier/internal/domain"
)

const userIDKey = "userID"

// RequireAuth resolves the Authorization bearer token and stores the
// caller's user ID on the context. Requests without a valid token are
// rejected with 401.
func RequireAuth(verifier domain.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}
		userID, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUser reads the user ID stored by RequireAuth.
func currentUser(c *gin.Context) domain.UserID {
	return c.MustGet(userIDKey).(domain.UserID)
}
