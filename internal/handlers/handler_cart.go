package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cartHandler exposes the checkout workflow.
type cartHandler struct {
	checkoutService portssvc.CheckoutSvc
}

func newCartHandler(cs portssvc.CheckoutSvc) *cartHandler {
	return &cartHandler{checkoutService: cs}
}

func registerCartRoutes(rg *gin.RouterGroup, checkoutService portssvc.CheckoutSvc) {
	h := newCartHandler(checkoutService)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.POST("/lines", h.addLine)
		cart.PUT("/lines/:productID", h.updateQuantity)
		cart.DELETE("/lines/:productID", h.removeLine)
		cart.PUT("/discount", h.setDiscount)
		cart.PUT("/fee", h.setFee)
		cart.PUT("/details", h.setDetails)
		cart.POST("/confirm", h.confirm)
		cart.POST("/cancel", h.cancel)
		cart.POST("/checkout", h.checkout)
	}
}

// respondCart writes the snapshot, or maps err.
func respondCart(c *gin.Context, logger *slog.Logger, snap domain.CartSnapshot, err error, fallback string) {
	if err != nil {
		respondError(c, logger, err, fallback)
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(snap))
}

func (h *cartHandler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCartResponse(h.checkoutService.Snapshot(c.Request.Context())))
}

func (h *cartHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	snap, err := h.checkoutService.AddLine(c.Request.Context(), domain.CartLine{
		ProductID: req.ProductID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
	})
	respondCart(c, logger, snap, err, "Failed to add product")
}

func (h *cartHandler) updateQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := int64Param(c, logger, "productID")
	if !ok {
		return
	}
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	snap, err := h.checkoutService.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	respondCart(c, logger, snap, err, "Failed to update quantity")
}

func (h *cartHandler) removeLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := int64Param(c, logger, "productID")
	if !ok {
		return
	}
	snap, err := h.checkoutService.RemoveLine(c.Request.Context(), productID)
	respondCart(c, logger, snap, err, "Failed to remove product")
}

func (h *cartHandler) setDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	snap, err := h.checkoutService.SetDiscount(c.Request.Context(), domain.DiscountSpec{
		Kind:  domain.DiscountKind(req.Kind),
		Value: req.Value,
	})
	respondCart(c, logger, snap, err, "Failed to set discount")
}

func (h *cartHandler) setFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	snap, err := h.checkoutService.SetFee(c.Request.Context(), req.Fee)
	respondCart(c, logger, snap, err, "Failed to set fee")
}

func (h *cartHandler) setDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	snap, err := h.checkoutService.SetDetails(c.Request.Context(), req.ToDomain())
	respondCart(c, logger, snap, err, "Failed to set sale details")
}

func (h *cartHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	snap, err := h.checkoutService.Confirm(c.Request.Context())
	respondCart(c, logger, snap, err, "Failed to confirm sale")
}

func (h *cartHandler) cancel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	snap, err := h.checkoutService.Cancel(c.Request.Context())
	respondCart(c, logger, snap, err, "Failed to cancel confirmation")
}

func (h *cartHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.checkoutService.Checkout(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to save the sale")
		return
	}
	logger.Info("Sale completed", slog.String("order_id", order.ID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}
