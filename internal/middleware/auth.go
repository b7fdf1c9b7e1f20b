package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// SessionAuthenticator resolves a bearer token to the live session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// AuthMiddleware creates a Gin middleware handler that only lets requests
// carrying the token of the live session through.
func AuthMiddleware(auth SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Session rejected", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session is not active"})
			return
		}

		enrichedLogger := logger.With(slog.String("session_id", session.ID))
		ctx := context.WithValue(c.Request.Context(), sessionKey, session)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(sessionKey), session)

		c.Next()
	}
}
