package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves one running-balance ledger (employees or suppliers).
type ledgerHandler[A domain.LedgerAccount[A]] struct {
	name          string
	ledgerService portssvc.LedgerSvcFacade[A]
	export        func(ctx context.Context, w io.Writer) error
}

func registerLedgerRoutes[A domain.LedgerAccount[A]](
	rg *gin.RouterGroup,
	name string,
	ledgerService portssvc.LedgerSvcFacade[A],
	export func(ctx context.Context, w io.Writer) error,
) {
	h := &ledgerHandler[A]{name: name, ledgerService: ledgerService, export: export}

	accounts := rg.Group("/" + name)
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.GET("/export", h.exportAccounts)
		accounts.POST("/end-period", h.endPeriod)
		accounts.GET("/:accountID", h.getAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.POST("/:accountID/transactions", h.addTransaction)
		accounts.GET("/:accountID/statement", h.statement)
	}
}

// listAccounts returns every account. ?q= filters by name, ignoring case.
func (h *ledgerHandler[A]) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accounts, err := h.ledgerService.SearchAccounts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, logger, err, "Failed to list "+h.name)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

func (h *ledgerHandler[A]) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	acc, err := h.ledgerService.CreateAccount(c.Request.Context(), req.Name, req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to create account")
		return
	}
	logger.Info("Account created", slog.String("ledger", h.name), slog.Int64("account_id", acc.AccountID()))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(acc))
}

func (h *ledgerHandler[A]) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "accountID")
	if !ok {
		return
	}
	acc, err := h.ledgerService.GetAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(acc))
}

func (h *ledgerHandler[A]) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "accountID")
	if !ok {
		return
	}
	if err := h.ledgerService.DeleteAccount(c.Request.Context(), id); err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ledgerHandler[A]) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "accountID")
	if !ok {
		return
	}
	var req dto.AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	acc, err := h.ledgerService.AddTransaction(c.Request.Context(), id, req.Amount, req.Note)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(acc))
}

func (h *ledgerHandler[A]) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := int64Param(c, logger, "accountID")
	if !ok {
		return
	}
	rows, err := h.ledgerService.Statement(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, "Failed to build statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(rows))
}

func (h *ledgerHandler[A]) endPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.ledgerService.EndPeriod(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to close the period")
		return
	}
	logger.Info("Period closed", slog.String("ledger", h.name))
	c.Status(http.StatusNoContent)
}

func (h *ledgerHandler[A]) exportAccounts(c *gin.Context) {
	sendWorkbook(c, middleware.GetLoggerFromCtx(c.Request.Context()), h.name, h.export)
}
