package services

import "github.com/SscSPs/pos_ledger_app/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Orders    OrderSvcFacade
	Checkout  CheckoutSvc
	Employees LedgerSvcFacade[domain.Employee]
	Suppliers LedgerSvcFacade[domain.Supplier]
	Catalog   CatalogSvcFacade
	Session   SessionSvc
	Export    ExportSvc
	Receipt   ReceiptSvc
}
