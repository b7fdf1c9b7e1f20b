package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionService keeps at most one live operator session.
type sessionService struct {
	BaseService
	credential utils.Credential
	secret     []byte
	now        func() time.Time

	mu      sync.RWMutex
	current *domain.Session
}

// NewSessionService hashes the configured password once. An empty secret gets a random one,
// which invalidates tokens across restarts.
func NewSessionService(email, password, secret string) (portssvc.SessionSvc, error) {
	credential, err := utils.NewCredential(email, password)
	if err != nil {
		return nil, err
	}
	key, err := utils.SessionSecret(secret)
	if err != nil {
		return nil, err
	}
	return &sessionService{
		credential: credential,
		secret:     key,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

var _ portssvc.SessionSvc = (*sessionService)(nil)

func (s *sessionService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if !s.credential.Configured() {
		s.LogWarn(ctx, "Login attempted but no credentials are configured")
		return "", nil, fmt.Errorf("%w: login is not configured", apperrors.ErrUnauthorized)
	}
	if !s.credential.Matches(email, password) {
		s.LogWarn(ctx, "Login rejected")
		return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Subject:   s.credential.Email(),
		CreatedAt: s.now(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  session.Subject,
		ID:       session.ID,
		IssuedAt: jwt.NewNumericDate(session.CreatedAt),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.LogInfo(ctx, "Session started", slog.String("session_id", session.ID))
	out := *session
	return signed, &out, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.LogInfo(ctx, "Session ended", slog.String("session_id", s.current.ID))
	}
	s.current = nil
	return nil
}

func (s *sessionService) Authenticate(_ context.Context, tokenString string) (*domain.Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || claims.ID != s.current.ID {
		return nil, fmt.Errorf("%w: session is not active", apperrors.ErrUnauthorized)
	}
	out := *s.current
	return &out, nil
}
