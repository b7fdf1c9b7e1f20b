package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CatalogReader defines read operations against the remote store
type CatalogReader interface {
	ListProducts(ctx context.Context, q domain.ProductQuery) (domain.Page[domain.Product], error)
	ListCategories(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Category], error)
	ListCustomers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Customer], error)
	ListOrders(ctx context.Context, q domain.ListQuery) (domain.Page[domain.OnlineOrder], error)
}

// CatalogWriter defines write operations against the remote store
type CatalogWriter interface {
	CreateCustomer(ctx context.Context, c domain.NewCustomer) (*domain.Customer, error)
	UpdateProductStatus(ctx context.Context, productID int64, status domain.ProductStatus) (*domain.Product, error)
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error)
	CreateOrder(ctx context.Context, order domain.LocalOrder) (*domain.OnlineOrder, error)
}

// CatalogRepositoryFacade combines all remote catalog operations
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
