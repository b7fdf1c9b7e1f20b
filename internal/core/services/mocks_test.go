package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock KVStore ---
type MockKVStore struct {
	mock.Mock
}

func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKVStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKVStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, q domain.ProductQuery) (domain.Page[domain.Product], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Product]), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Category], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Category]), args.Error(1)
}

func (m *MockCatalogRepository) ListCustomers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Customer], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Customer]), args.Error(1)
}

func (m *MockCatalogRepository) ListOrders(ctx context.Context, q domain.ListQuery) (domain.Page[domain.OnlineOrder], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.OnlineOrder]), args.Error(1)
}

func (m *MockCatalogRepository) CreateCustomer(ctx context.Context, c domain.NewCustomer) (*domain.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCatalogRepository) UpdateProductStatus(ctx context.Context, productID int64, status domain.ProductStatus) (*domain.Product, error) {
	args := m.Called(ctx, productID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error) {
	args := m.Called(ctx, name, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) CreateOrder(ctx context.Context, order domain.LocalOrder) (*domain.OnlineOrder, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnlineOrder), args.Error(1)
}

// --- Mock OrderAppender ---
type MockOrderAppender struct {
	mock.Mock
}

func (m *MockOrderAppender) AppendOrder(ctx context.Context, draft domain.OrderDraft) (*domain.LocalOrder, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalOrder), args.Error(1)
}

// --- Fake printer ---
type fakePrinter struct {
	mu   sync.Mutex
	jobs [][]byte
	err  error
}

func (p *fakePrinter) Name() string { return "fake" }

func (p *fakePrinter) Print(_ context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, append([]byte(nil), data...))
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
