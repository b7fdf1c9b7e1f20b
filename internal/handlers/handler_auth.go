package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login and logout of the operator session.
type authHandler struct {
	sessionService portssvc.SessionSvc
}

func newAuthHandler(ss portssvc.SessionSvc) *authHandler {
	return &authHandler{sessionService: ss}
}

// registerAuthRoutes sets up the routes for authentication. Login is rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, sessionService portssvc.SessionSvc, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(sessionService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
		auth.POST("/logout", middleware.AuthMiddleware(sessionService), h.logout)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}

	token, session, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err, "Failed to start session")
		return
	}

	logger.Info("Operator logged in", slog.String("session_id", session.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Session: dto.ToSessionResponse(session)})
}

func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to end session")
		return
	}
	logger.Info("Operator logged out")
	c.Status(http.StatusNoContent)
}
