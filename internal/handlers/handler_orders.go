package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles the local invoice history.
type orderHandler struct {
	orderService   portssvc.OrderSvcFacade
	receiptService portssvc.ReceiptSvc
	exportService  portssvc.ExportSvc
	catalogService portssvc.CatalogWriterSvc
}

func newOrderHandler(ords portssvc.OrderSvcFacade, rs portssvc.ReceiptSvc, es portssvc.ExportSvc, cs portssvc.CatalogWriterSvc) *orderHandler {
	return &orderHandler{orderService: ords, receiptService: rs, exportService: es, catalogService: cs}
}

func registerOrderRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOrderHandler(services.Orders, services.Receipt, services.Export, services.Catalog)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.DELETE("", h.clearOrders)
		orders.GET("/export", h.exportOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.DELETE("/:orderID", h.removeOrder)
		orders.POST("/:orderID/print", h.printOrder)
		orders.POST("/:orderID/publish", h.publishOrder)
	}
}

// listOrders returns the invoices most recent first. ?q= filters by id prefix or cashier.
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orders, err := h.orderService.SearchOrders(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) removeOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")
	if err := h.orderService.RemoveOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, logger, err, "Failed to delete order")
		return
	}
	logger.Info("Order deleted", slog.String("order_id", orderID))
	c.Status(http.StatusNoContent)
}

func (h *orderHandler) clearOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.orderService.ClearOrders(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to clear orders")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *orderHandler) exportOrders(c *gin.Context) {
	sendWorkbook(c, middleware.GetLoggerFromCtx(c.Request.Context()), "local-orders", h.exportService.ExportOrders)
}

func (h *orderHandler) printOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")
	preview, err := h.receiptService.PrintOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, logger, err, "Failed to print receipt")
		return
	}
	c.JSON(http.StatusOK, dto.ReceiptResponse{OrderID: orderID, Preview: preview})
}

// publishOrder pushes a local invoice to the online store as a paid order.
func (h *orderHandler) publishOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	online, err := h.catalogService.PublishOrder(c.Request.Context(), *order)
	if err != nil {
		respondError(c, logger, err, "Failed to publish order")
		return
	}
	c.JSON(http.StatusCreated, online)
}
