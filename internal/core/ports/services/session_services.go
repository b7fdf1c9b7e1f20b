package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// SessionSvc owns the process-wide operator session.
type SessionSvc interface {
	// Login replaces any live session and returns its signed token.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)

	// Logout destroys the live session. Logging out twice is not an error.
	Logout(ctx context.Context) error

	// Authenticate returns the live session named by token, or apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}
