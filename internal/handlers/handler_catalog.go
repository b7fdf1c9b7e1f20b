package handlers

import (
	"net/http"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/dto"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler proxies the remote store catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{catalogService: catalogService}

	catalog := rg.Group("/catalog")
	{
		catalog.GET("/bootstrap", h.bootstrap)
		catalog.GET("/products", h.searchProducts)
		catalog.GET("/products/current", h.currentProducts)
		catalog.POST("/products", h.createProduct)
		catalog.PUT("/products/:productID/status", h.setProductStatus)
		catalog.GET("/categories", h.listCategories)
		catalog.GET("/customers", h.listCustomers)
		catalog.POST("/customers", h.createCustomer)
		catalog.GET("/orders", h.listOnlineOrders)
	}
}

func bindListParams(c *gin.Context) (dto.ListParams, bool) {
	var p dto.ListParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, middleware.GetLoggerFromCtx(c.Request.Context()), "Invalid query parameters", err)
		return p, false
	}
	return p, true
}

func (h *catalogHandler) bootstrap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	boot, err := h.catalogService.Bootstrap(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load catalog")
		return
	}
	c.JSON(http.StatusOK, boot)
}

func (h *catalogHandler) searchProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.catalogService.SearchProducts(c.Request.Context(), domain.ProductQuery{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Search:     p.Search,
		CategoryID: p.CategoryID,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *catalogHandler) currentProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.CurrentProducts())
}

func (h *catalogHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	product, err := h.catalogService.CreateProduct(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *catalogHandler) setProductStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID, ok := int64Param(c, logger, "productID")
	if !ok {
		return
	}
	var req dto.ProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	product, err := h.catalogService.SetProductStatus(c.Request.Context(), productID, domain.ProductStatus(req.Status))
	if err != nil {
		respondError(c, logger, err, "Failed to update product status")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *catalogHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.catalogService.ListCategories(c.Request.Context(), domain.ListQuery{Page: p.Page, PerPage: p.PerPage})
	if err != nil {
		respondError(c, logger, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *catalogHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.catalogService.ListCustomers(c.Request.Context(), domain.ListQuery{Page: p.Page, PerPage: p.PerPage, Search: p.Search})
	if err != nil {
		respondError(c, logger, err, "Failed to load customers")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *catalogHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request body", err)
		return
	}
	customer, err := h.catalogService.CreateCustomer(c.Request.Context(), domain.NewCustomer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *catalogHandler) listOnlineOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	p, ok := bindListParams(c)
	if !ok {
		return
	}
	page, err := h.catalogService.ListOnlineOrders(c.Request.Context(), domain.ListQuery{Page: p.Page, PerPage: p.PerPage, Search: p.Search})
	if err != nil {
		respondError(c, logger, err, "Failed to load online orders")
		return
	}
	c.JSON(http.StatusOK, page)
}
