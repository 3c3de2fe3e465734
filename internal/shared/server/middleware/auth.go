package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

const userIDKey = "userId"

// TokenVerifier checks a session token and returns the user ID it embeds.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserChecker reports whether the user behind a token still exists.
type UserChecker func(ctx context.Context, userID string) (bool, error)

// Auth validates bearer tokens and stores the authenticated user ID in context.
// A token whose user has been removed is treated the same as an invalid token.
func Auth(verifier TokenVerifier, checkUser UserChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Preflights carry no Authorization header. CORS answers them first
		// in the full chain; this keeps Auth preflight-safe when mounted alone.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			respond.Error(c, http.StatusUnauthorized, "No token provided")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		if !strings.HasPrefix(authHeader, "Bearer ") || token == "" {
			respond.Error(c, http.StatusUnauthorized, "No token provided")
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		if checkUser != nil {
			exists, err := checkUser(c.Request.Context(), userID)
			if err != nil || !exists {
				respond.Error(c, http.StatusUnauthorized, "Invalid token")
				return
			}
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
