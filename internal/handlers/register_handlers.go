package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteOptions carries the HTTP-level settings of RegisterRoutes.
type RouteOptions struct {
	AllowedOrigins []string
	// LoginLimit guards POST /auth/login. Nil disables rate limiting.
	LoginLimit gin.HandlerFunc
	// Gatherer backs GET /metrics. Nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, opts RouteOptions, services *portssvc.ServiceContainer) {
	useJSONFieldNames()
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	loginLimit := opts.LoginLimit
	if loginLimit == nil {
		loginLimit = func(c *gin.Context) { c.Next() }
	}
	registerAuthRoutes(r, services.Session, loginLimit)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Session))

	registerCartRoutes(v1, services.Checkout)
	registerOrderRoutes(v1, services)
	registerLedgerRoutes(v1, "employees", services.Employees, services.Export.ExportEmployees)
	registerLedgerRoutes(v1, "suppliers", services.Suppliers, services.Export.ExportSuppliers)
	registerCatalogRoutes(v1, services.Catalog)
}
