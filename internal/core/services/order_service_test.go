package services_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func sampleDraft(cashier string) domain.OrderDraft {
	return domain.OrderDraft{
		Items:         []domain.OrderItem{{ProductID: 1, Name: "Tea", Quantity: 2, Price: dec("1.25")}},
		CashierName:   cashier,
		PaymentMethod: "pos-cash",
		PaymentTitle:  "Cash",
		Discount:      dec("0.50"),
		Fee:           dec("0"),
	}
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	store   *memory.KVStore
	service portssvc.OrderSvcFacade
	clock   time.Time
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.store = memory.NewKVStore()
	suite.clock = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	suite.service = services.NewOrderService(suite.store, services.WithOrderClock(func() time.Time {
		suite.clock = suite.clock.Add(time.Minute)
		return suite.clock
	}))
}

func (suite *OrderServiceTestSuite) TestAppendAndGetRoundTrip() {
	ctx := context.Background()

	order, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))
	suite.Require().NoError(err)
	suite.NotEmpty(order.ID)
	suite.Equal(domain.OrderCompleted, order.Status)

	got, err := suite.service.GetOrder(ctx, order.ID)
	suite.Require().NoError(err)
	suite.Equal(order.ID, got.ID)
	suite.Equal("Sam", got.CashierName)
	suite.True(got.Discount.Equal(dec("0.5")))
	suite.Equal(2, got.Items[0].Quantity)
}

func (suite *OrderServiceTestSuite) TestAppendRejectsInvalidDraft() {
	draft := sampleDraft("Sam")
	draft.Items = nil
	draft.Fee = dec("-1")

	_, err := suite.service.AppendOrder(context.Background(), draft)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Len(apperrors.ValidationMessages(err), 2)
}

func (suite *OrderServiceTestSuite) TestListMostRecentFirstAndSearch() {
	ctx := context.Background()
	first, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))
	suite.Require().NoError(err)
	second, err := suite.service.AppendOrder(ctx, sampleDraft("Alex"))
	suite.Require().NoError(err)

	orders, err := suite.service.ListOrders(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(second.ID, orders[0].ID)
	suite.Equal(first.ID, orders[1].ID)

	matched, err := suite.service.SearchOrders(ctx, "ale")
	suite.Require().NoError(err)
	suite.Require().Len(matched, 1)
	suite.Equal(second.ID, matched[0].ID)

	byID, err := suite.service.SearchOrders(ctx, first.ID[:8])
	suite.Require().NoError(err)
	suite.Require().Len(byID, 1)
	suite.Equal(first.ID, byID[0].ID)
}

func (suite *OrderServiceTestSuite) TestGetOrderNotFound() {
	_, err := suite.service.GetOrder(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OrderServiceTestSuite) TestRemoveOrderIsIdempotent() {
	ctx := context.Background()
	order, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.RemoveOrder(ctx, order.ID))
	suite.Require().NoError(suite.service.RemoveOrder(ctx, order.ID))

	orders, err := suite.service.ListOrders(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func (suite *OrderServiceTestSuite) TestClearOrders() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))
		suite.Require().NoError(err)
	}

	suite.Require().NoError(suite.service.ClearOrders(ctx))

	orders, err := suite.service.ListOrders(ctx)
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

// gatedStore holds the first Get until release is closed.
type gatedStore struct {
	*memory.KVStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Get(ctx context.Context, key string) ([]byte, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.KVStore.Get(ctx, key)
}

func (suite *OrderServiceTestSuite) TestClearWaitsForInFlightAppend() {
	ctx := context.Background()
	for _, cashier := range []string{"Sam", "Alex"} {
		_, err := suite.service.AppendOrder(ctx, sampleDraft(cashier))
		suite.Require().NoError(err)
	}

	gated := &gatedStore{KVStore: suite.store, entered: make(chan struct{}), release: make(chan struct{})}
	svc := services.NewOrderService(gated)

	appendErr := make(chan error, 1)
	go func() {
		_, err := svc.AppendOrder(ctx, sampleDraft("Jo"))
		appendErr <- err
	}()
	<-gated.entered

	clearErr := make(chan error, 1)
	go func() { clearErr <- svc.ClearOrders(ctx) }()

	select {
	case <-clearErr:
		suite.Fail("clear finished while an append was still reading the orders")
	case <-time.After(50 * time.Millisecond):
	}

	close(gated.release)
	suite.Require().NoError(<-appendErr)
	suite.Require().NoError(<-clearErr)

	orders, err := svc.ListOrders(ctx)
	suite.Require().NoError(err)
	suite.Empty(orders)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

// --- Persistence failures ---
type OrderServicePersistenceTestSuite struct {
	suite.Suite
	mockStore *MockKVStore
	service   portssvc.OrderSvcFacade
}

func (suite *OrderServicePersistenceTestSuite) SetupTest() {
	suite.mockStore = new(MockKVStore)
	suite.service = services.NewOrderService(suite.mockStore)
}

func (suite *OrderServicePersistenceTestSuite) TestAppendWriteFailure() {
	ctx := context.Background()
	suite.mockStore.On("Get", ctx, portsrepo.KeyOrders).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStore.On("Set", ctx, portsrepo.KeyOrders, mock.Anything).Return(assert.AnError).Once()

	order, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))

	suite.Require().Error(err)
	suite.Nil(order)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *OrderServicePersistenceTestSuite) TestCorruptCollection() {
	ctx := context.Background()
	suite.mockStore.On("Get", ctx, portsrepo.KeyOrders).Return([]byte("{not json"), nil).Once()

	_, err := suite.service.ListOrders(ctx)

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func (suite *OrderServicePersistenceTestSuite) TestAppendIsSingleWriteOfWholeList() {
	ctx := context.Background()
	existing, _ := json.Marshal([]domain.LocalOrder{{ID: "old", OrderDraft: sampleDraft("Ana")}})
	suite.mockStore.On("Get", ctx, portsrepo.KeyOrders).Return(existing, nil).Once()
	suite.mockStore.On("Set", ctx, portsrepo.KeyOrders, mock.MatchedBy(func(raw []byte) bool {
		var orders []domain.LocalOrder
		return json.Unmarshal(raw, &orders) == nil && len(orders) == 2 && orders[0].ID == "old"
	})).Return(nil).Once()

	_, err := suite.service.AppendOrder(ctx, sampleDraft("Sam"))

	suite.Require().NoError(err)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *OrderServicePersistenceTestSuite) TestRemoveAbsentDoesNotWrite() {
	ctx := context.Background()
	suite.mockStore.On("Get", ctx, portsrepo.KeyOrders).Return([]byte("[]"), nil).Once()

	suite.Require().NoError(suite.service.RemoveOrder(ctx, "nope"))

	suite.mockStore.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServicePersistenceTestSuite) TestClearFailure() {
	ctx := context.Background()
	suite.mockStore.On("Remove", ctx, portsrepo.KeyOrders).Return(assert.AnError).Once()

	err := suite.service.ClearOrders(ctx)

	suite.ErrorIs(err, apperrors.ErrPersistence)
}

func TestOrderServicePersistenceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServicePersistenceTestSuite))
}
