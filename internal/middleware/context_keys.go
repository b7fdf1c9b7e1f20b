package middleware

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// sessionKey is the key used to store the live session in the Gin context.
const sessionKey = contextKey("session")

// GetSessionFromContext retrieves the authenticated session from the Gin context.
// It returns the session and a boolean indicating if it was found.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		if s, ok := c.Request.Context().Value(sessionKey).(*domain.Session); ok {
			return s, true
		}
		return nil, false
	}
	s, ok := val.(*domain.Session)
	return s, ok
}
