package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse describes the live session.
type SessionResponse struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the bearer token of the new session.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{ID: s.ID, Subject: s.Subject, CreatedAt: s.CreatedAt}
}
