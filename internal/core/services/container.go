package services

import (
	"fmt"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
	"github.com/SscSPs/pos_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/pos_ledger_app/pkg/printer"
)

// NewServiceContainer wires every service on top of the given repositories.
func NewServiceContainer(
	cfg *config.Config,
	repos *portsrepo.RepositoryProvider,
	m *metrics.POSMetrics,
	p printer.Printer,
) (*portssvc.ServiceContainer, error) {
	session, err := NewSessionService(cfg.LoginEmail, cfg.LoginPassword, cfg.SessionSecret)
	if err != nil {
		return nil, fmt.Errorf("creating session service: %w", err)
	}

	ids := domain.NewIDGenerator()
	orders := NewOrderService(repos.Store)
	employees := NewEmployeeService(repos.Store, ids, m)
	suppliers := NewSupplierService(repos.Store, ids, m)

	return &portssvc.ServiceContainer{
		Orders:    orders,
		Checkout:  NewCheckoutService(orders, m),
		Employees: employees,
		Suppliers: suppliers,
		Catalog:   NewCatalogService(repos.Catalog, m),
		Session:   session,
		Export:    NewExportService(employees, suppliers, orders),
		Receipt:   NewReceiptService(orders, p, cfg.StoreName, cfg.ReceiptWidth),
	}, nil
}
