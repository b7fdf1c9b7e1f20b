package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// orderService implements the OrderSvcFacade interface
type orderService struct {
	BaseService
	store portsrepo.KVStoreFacade
	now   func() time.Time

	// mu serializes read-modify-write of the orders collection.
	mu sync.Mutex
}

// OrderServiceOption is a functional option for configuring the order service
type OrderServiceOption func(*orderService)

// WithOrderClock overrides the clock used to stamp created orders.
func WithOrderClock(now func() time.Time) OrderServiceOption {
	return func(s *orderService) {
		s.now = now
	}
}

// NewOrderService creates a new local order store backed by store.
func NewOrderService(store portsrepo.KVStoreFacade, options ...OrderServiceOption) portssvc.OrderSvcFacade {
	svc := &orderService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure orderService implements the OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func validateDraft(draft domain.OrderDraft) error {
	var msgs []string
	if len(draft.Items) == 0 {
		msgs = append(msgs, "order has no items")
	}
	for _, item := range draft.Items {
		if item.Quantity < 1 {
			msgs = append(msgs, fmt.Sprintf("item %d: quantity must be at least 1", item.ProductID))
		}
		if item.Price.IsNegative() {
			msgs = append(msgs, fmt.Sprintf("item %d: price must not be negative", item.ProductID))
		}
	}
	if draft.Discount.IsNegative() {
		msgs = append(msgs, "discount must not be negative")
	}
	if draft.Fee.IsNegative() {
		msgs = append(msgs, "fee must not be negative")
	}
	if !draft.Status.Valid() {
		msgs = append(msgs, fmt.Sprintf("unknown order status %q", draft.Status))
	}
	return apperrors.NewValidationError(msgs)
}

func (s *orderService) AppendOrder(ctx context.Context, draft domain.OrderDraft) (*domain.LocalOrder, error) {
	if draft.Status == "" {
		draft.Status = domain.OrderCompleted
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := loadCollection[domain.LocalOrder](ctx, s.store, portsrepo.KeyOrders)
	if err != nil {
		s.LogError(ctx, err, "Failed to load local orders")
		return nil, err
	}

	order := domain.LocalOrder{
		ID:         uuid.NewString(),
		CreatedAt:  s.now(),
		OrderDraft: draft,
	}
	orders = append(orders, order)

	if err := saveCollection(ctx, s.store, portsrepo.KeyOrders, orders); err != nil {
		s.LogError(ctx, err, "Failed to persist local order", slog.String("order_id", order.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Local order saved", slog.String("order_id", order.ID), slog.Int("items", len(order.Items)))
	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.LocalOrder, error) {
	orders, err := loadCollection[domain.LocalOrder](ctx, s.store, portsrepo.KeyOrders)
	if err != nil {
		return nil, err
	}
	slices.Reverse(orders)
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.LocalOrder, error) {
	orders, err := loadCollection[domain.LocalOrder](ctx, s.store, portsrepo.KeyOrders)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
}

func (s *orderService) SearchOrders(ctx context.Context, query string) ([]domain.LocalOrder, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.LocalOrder, 0, len(orders))
	for _, o := range orders {
		if o.Matches(query) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (s *orderService) RemoveOrder(ctx context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := loadCollection[domain.LocalOrder](ctx, s.store, portsrepo.KeyOrders)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(slices.Clone(orders), func(o domain.LocalOrder) bool {
		return o.ID == orderID
	})
	if len(kept) == len(orders) {
		s.LogDebug(ctx, "Order already absent", slog.String("order_id", orderID))
		return nil
	}
	if err := saveCollection(ctx, s.store, portsrepo.KeyOrders, kept); err != nil {
		s.LogError(ctx, err, "Failed to remove local order", slog.String("order_id", orderID))
		return err
	}
	return nil
}

func (s *orderService) ClearOrders(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, portsrepo.KeyOrders); err != nil {
		wrapped := fmt.Errorf("%w: clearing orders: %v", apperrors.ErrPersistence, err)
		s.LogError(ctx, wrapped, "Failed to clear local orders")
		return wrapped
	}
	s.LogInfo(ctx, "Local orders cleared")
	return nil
}
