package woocommerce

import (
	"context"
	"errors"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

var errNotConfigured = errors.New("online store is not configured")

// Offline stands in for the remote catalog when no store URL is set.
// Every call fails with apperrors.ErrRemoteFetch so local selling keeps working.
type Offline struct{}

var _ portsrepo.CatalogRepositoryFacade = Offline{}

func (Offline) ListProducts(context.Context, domain.ProductQuery) (domain.Page[domain.Product], error) {
	return domain.Page[domain.Product]{}, remoteErr("list products", errNotConfigured)
}

func (Offline) ListCategories(context.Context, domain.ListQuery) (domain.Page[domain.Category], error) {
	return domain.Page[domain.Category]{}, remoteErr("list categories", errNotConfigured)
}

func (Offline) ListCustomers(context.Context, domain.ListQuery) (domain.Page[domain.Customer], error) {
	return domain.Page[domain.Customer]{}, remoteErr("list customers", errNotConfigured)
}

func (Offline) ListOrders(context.Context, domain.ListQuery) (domain.Page[domain.OnlineOrder], error) {
	return domain.Page[domain.OnlineOrder]{}, remoteErr("list orders", errNotConfigured)
}

func (Offline) CreateCustomer(context.Context, domain.NewCustomer) (*domain.Customer, error) {
	return nil, remoteErr("create customer", errNotConfigured)
}

func (Offline) UpdateProductStatus(context.Context, int64, domain.ProductStatus) (*domain.Product, error) {
	return nil, remoteErr("update product", errNotConfigured)
}

func (Offline) CreateProduct(context.Context, string, decimal.Decimal) (*domain.Product, error) {
	return nil, remoteErr("create product", errNotConfigured)
}

func (Offline) CreateOrder(context.Context, domain.LocalOrder) (*domain.OnlineOrder, error) {
	return nil, remoteErr("create order", errNotConfigured)
}
