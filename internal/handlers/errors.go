package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP statuses. fallback is the message for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
		logger.Warn("Request rejected by validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Validation failed", Messages: validationMessages(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn("Operation not allowed in current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrSuperseded):
		logger.Debug("Request superseded", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Superseded by a newer request"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrRemoteFetch):
		logger.Error("Remote catalog failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: fallback})
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error("Local store failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: fallback})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func validationMessages(err error) []string {
	if msgs := apperrors.ValidationMessages(err); len(msgs) > 0 {
		return msgs
	}
	return []string{err.Error()}
}

func badRequest(c *gin.Context, logger *slog.Logger, msg string, err error) {
	if err != nil {
		logger.Warn(msg, slog.String("error", err.Error()))
		if msgs := bindingMessages(err); len(msgs) > 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Messages: msgs})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg + ": " + err.Error()})
		return
	}
	logger.Warn(msg)
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// int64Param parses a numeric path parameter, answering 400 when it is malformed.
func int64Param(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, logger, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
