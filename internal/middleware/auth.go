package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yonchee/conduit-api/internal/auth"
	apierrors "github.com/yonchee/conduit-api/internal/errors"
)

const (
	// ContextKeyUserID is the gin context key holding the authenticated user ID.
	ContextKeyUserID = "userID"
	// ContextKeyUserEmail is the gin context key holding the authenticated email.
	ContextKeyUserEmail = "userEmail"
)

// RequireAuth verifies the bearer token on a request and injects the resolved
// claim into the gin context. This is the single enforcement point for "is
// there a caller"; handlers behind it only decide what the caller may do.
func RequireAuth(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			apierrors.Unauthorized(c, "Missing auth token")
			c.Abort()
			return
		}

		claims, err := codec.Verify(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid auth token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// extractToken pulls the raw token out of an Authorization header. Both the
// "Bearer" and the legacy "Token" schemes are accepted.
func extractToken(header string) string {
	if header == "" {
		return ""
	}
	for _, scheme := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, scheme) {
			return strings.TrimSpace(strings.TrimPrefix(header, scheme))
		}
	}
	return ""
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	if !ok {
		return 0, false
	}
	return userID, true
}

// GetUserEmail retrieves the current user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserEmail)
	if !exists {
		return "", false
	}

	email, ok := value.(string)
	return email, ok
}
