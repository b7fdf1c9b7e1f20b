package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReaderSvc defines read operations on the remote catalog
type CatalogReaderSvc interface {
	// SearchProducts fetches a product page. A result that resolves after a newer
	// search was issued returns apperrors.ErrSuperseded and is dropped.
	SearchProducts(ctx context.Context, q domain.ProductQuery) (domain.Page[domain.Product], error)

	// CurrentProducts is the page of the most recent search that completed without being superseded.
	CurrentProducts() domain.Page[domain.Product]

	ListCategories(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Category], error)
	ListCustomers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Customer], error)
	ListOnlineOrders(ctx context.Context, q domain.ListQuery) (domain.Page[domain.OnlineOrder], error)

	// Bootstrap loads categories and the first customer page in parallel.
	Bootstrap(ctx context.Context) (*domain.CatalogBootstrap, error)
}

// CatalogWriterSvc defines write operations on the remote catalog
type CatalogWriterSvc interface {
	CreateCustomer(ctx context.Context, c domain.NewCustomer) (*domain.Customer, error)
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error)
	SetProductStatus(ctx context.Context, productID int64, status domain.ProductStatus) (*domain.Product, error)

	// PublishOrder pushes a local order to the remote store as a paid order.
	PublishOrder(ctx context.Context, order domain.LocalOrder) (*domain.OnlineOrder, error)
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
