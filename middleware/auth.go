package middleware

import (
	"context"
	"net/http"
	"strings"

	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the session it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.AuthSession, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

func setSession(c *gin.Context, token string, session *utils.AuthSession) {
	c.Set("userID", session.UserID)
	c.Set("role", session.Role)
	c.Set("tokenHash", utils.HashToken(token))
}

// JWTAuthMiddleware rejects requests without a valid bearer token whose hash
// matches the one stored for the user.
func JWTAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil || session == nil {
			utils.GetLogger().Debug("Authentication failed", zap.String("ip", getClientIP(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token mismatch",
				"code":  0,
			})
			return
		}

		setSession(c, token, session)
		c.Next()
	}
}

// OptionalAuthMiddleware sets the session when a valid token is present and
// lets anonymous requests through untouched.
func OptionalAuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if session, err := auth.Authenticate(c.Request.Context(), token); err == nil && session != nil {
				setSession(c, token, session)
			}
		}
		c.Next()
	}
}
