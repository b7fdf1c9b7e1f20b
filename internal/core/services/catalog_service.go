package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/pos_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const bootstrapCategoryPageSize = 100

// catalogService fronts the remote store. Product searches are last-request-wins.
type catalogService struct {
	BaseService
	remote  portsrepo.CatalogRepositoryFacade
	metrics *metrics.POSMetrics

	generation atomic.Uint64
	mu         sync.RWMutex
	current    domain.Page[domain.Product]
}

// NewCatalogService creates the catalog service. m may be nil.
func NewCatalogService(remote portsrepo.CatalogRepositoryFacade, m *metrics.POSMetrics) portssvc.CatalogSvcFacade {
	return &catalogService{
		remote:  remote,
		metrics: m,
		current: domain.Page[domain.Product]{Items: []domain.Product{}, TotalPages: 1},
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) SearchProducts(ctx context.Context, q domain.ProductQuery) (domain.Page[domain.Product], error) {
	gen := s.generation.Add(1)
	q.Page, q.PerPage = pagination.Normalize(q.Page, q.PerPage)
	q.Search = strings.TrimSpace(q.Search)

	page, err := s.remote.ListProducts(ctx, q)
	s.metrics.CatalogRequest("products", err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation.Load() != gen {
		s.LogDebug(ctx, "Dropping superseded product search", slog.Uint64("generation", gen))
		return domain.Page[domain.Product]{}, fmt.Errorf("%w: product search %d", apperrors.ErrSuperseded, gen)
	}
	if err != nil {
		s.LogError(ctx, err, "Product search failed", slog.String("search", q.Search))
		return domain.Page[domain.Product]{}, err
	}
	s.current = page
	return page, nil
}

func (s *catalogService) CurrentProducts() domain.Page[domain.Product] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *catalogService) ListCategories(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Category], error) {
	q.Page, q.PerPage = pagination.Normalize(q.Page, q.PerPage)
	page, err := s.remote.ListCategories(ctx, q)
	s.metrics.CatalogRequest("categories", err)
	if err != nil {
		s.LogError(ctx, err, "Category listing failed")
	}
	return page, err
}

func (s *catalogService) ListCustomers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Customer], error) {
	q.Page, q.PerPage = pagination.Normalize(q.Page, q.PerPage)
	q.Search = strings.TrimSpace(q.Search)
	page, err := s.remote.ListCustomers(ctx, q)
	s.metrics.CatalogRequest("customers", err)
	if err != nil {
		s.LogError(ctx, err, "Customer listing failed")
	}
	return page, err
}

func (s *catalogService) ListOnlineOrders(ctx context.Context, q domain.ListQuery) (domain.Page[domain.OnlineOrder], error) {
	q.Page, q.PerPage = pagination.Normalize(q.Page, q.PerPage)
	q.Search = strings.TrimSpace(q.Search)
	page, err := s.remote.ListOrders(ctx, q)
	s.metrics.CatalogRequest("orders", err)
	if err != nil {
		s.LogError(ctx, err, "Online order listing failed")
	}
	return page, err
}

func (s *catalogService) Bootstrap(ctx context.Context) (*domain.CatalogBootstrap, error) {
	var (
		categories domain.Page[domain.Category]
		customers  domain.Page[domain.Customer]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.ListCategories(gctx, domain.ListQuery{Page: 1, PerPage: bootstrapCategoryPageSize})
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.ListCustomers(gctx, domain.ListQuery{Page: 1})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.CatalogBootstrap{
		Categories: categories.Items,
		Customers:  customers.Items,
	}, nil
}

func (s *catalogService) CreateCustomer(ctx context.Context, c domain.NewCustomer) (*domain.Customer, error) {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.FirstName == "" {
		return nil, apperrors.NewValidationError([]string{"first name is required"})
	}
	customer, err := s.remote.CreateCustomer(ctx, c)
	s.metrics.CatalogRequest("create_customer", err)
	if err != nil {
		s.LogError(ctx, err, "Customer creation failed")
		return nil, err
	}
	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	var msgs []string
	if name == "" {
		msgs = append(msgs, "product name is required")
	}
	if price.IsNegative() {
		msgs = append(msgs, "price must not be negative")
	}
	if err := apperrors.NewValidationError(msgs); err != nil {
		return nil, err
	}
	product, err := s.remote.CreateProduct(ctx, name, price)
	s.metrics.CatalogRequest("create_product", err)
	if err != nil {
		s.LogError(ctx, err, "Product creation failed")
		return nil, err
	}
	s.LogInfo(ctx, "Product created", slog.Int64("product_id", product.ID))
	return product, nil
}

func (s *catalogService) SetProductStatus(ctx context.Context, productID int64, status domain.ProductStatus) (*domain.Product, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationError([]string{fmt.Sprintf("unknown product status %q", status)})
	}
	product, err := s.remote.UpdateProductStatus(ctx, productID, status)
	s.metrics.CatalogRequest("product_status", err)
	if err != nil {
		s.LogError(ctx, err, "Product status update failed", slog.Int64("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *catalogService) PublishOrder(ctx context.Context, order domain.LocalOrder) (*domain.OnlineOrder, error) {
	online, err := s.remote.CreateOrder(ctx, order)
	s.metrics.CatalogRequest("create_order", err)
	if err != nil {
		s.LogError(ctx, err, "Publishing local order failed", slog.String("order_id", order.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Local order published", slog.String("order_id", order.ID), slog.Int64("remote_id", online.ID))
	return online, nil
}
