package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/metrics"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// checkoutService holds the one cart of the terminal.
type checkoutService struct {
	BaseService
	orders  portssvc.OrderAppender
	metrics *metrics.POSMetrics

	mu        sync.Mutex
	state     domain.CheckoutState
	lines     []domain.CartLine
	discount  domain.DiscountSpec
	fee       decimal.Decimal
	details   domain.CartDetails
	lastOrder *domain.LocalOrder
}

// NewCheckoutService creates the checkout workflow. m may be nil.
func NewCheckoutService(orders portssvc.OrderAppender, m *metrics.POSMetrics) portssvc.CheckoutSvc {
	return &checkoutService{
		orders:   orders,
		metrics:  m,
		state:    domain.StateBuilding,
		lines:    []domain.CartLine{},
		discount: domain.NoDiscount(),
		fee:      decimal.Zero,
		details: domain.CartDetails{
			PaymentMethod: domain.PaymentCash,
			Status:        domain.OrderCompleted,
		},
	}
}

var _ portssvc.CheckoutSvc = (*checkoutService)(nil)

// snapshotLocked must be called with mu held.
func (s *checkoutService) snapshotLocked() domain.CartSnapshot {
	lines := slices.Clone(s.lines)
	details := s.details
	if details.CustomerID != nil {
		id := *details.CustomerID
		details.CustomerID = &id
	}
	var last *domain.LocalOrder
	if s.lastOrder != nil {
		o := *s.lastOrder
		last = &o
	}
	warnings := accounting.Warnings(s.inputLocked())
	if warnings == nil {
		warnings = []string{}
	}
	return domain.CartSnapshot{
		State:     s.state,
		Lines:     lines,
		Discount:  s.discount,
		Fee:       s.fee,
		Details:   details,
		Totals:    accounting.ComputeTotals(s.lines, s.discount, s.fee),
		Warnings:  warnings,
		LastOrder: last,
	}
}

func (s *checkoutService) inputLocked() accounting.CheckoutInput {
	return accounting.CheckoutInput{
		Lines:       s.lines,
		CashierName: s.details.CashierName,
		Discount:    s.discount,
		Fee:         s.fee,
	}
}

// beginMutationLocked rejects edits while a sale is being confirmed or saved,
// and opens a fresh sale after a completed one.
func (s *checkoutService) beginMutationLocked() error {
	switch s.state {
	case domain.StateConfirming, domain.StatePersisting:
		return fmt.Errorf("%w: cart is %s", apperrors.ErrInvalidState, s.state)
	case domain.StateCompleted:
		s.state = domain.StateBuilding
		s.lastOrder = nil
	}
	return nil
}

func (s *checkoutService) indexOf(productID int64) int {
	return slices.IndexFunc(s.lines, func(l domain.CartLine) bool { return l.ProductID == productID })
}

func (s *checkoutService) Snapshot(_ context.Context) domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *checkoutService) AddLine(ctx context.Context, line domain.CartLine) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line.UnitPrice.IsNegative() {
		return s.snapshotLocked(), apperrors.NewValidationError([]string{"unit price must not be negative"})
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}

	if idx := s.indexOf(line.ProductID); idx >= 0 {
		s.lines[idx].Quantity += line.Quantity
	} else {
		s.lines = slices.Insert(s.lines, 0, line)
	}
	s.LogDebug(ctx, "Cart line added", slog.Int64("product_id", line.ProductID))
	return s.snapshotLocked(), nil
}

func (s *checkoutService) UpdateQuantity(_ context.Context, productID int64, quantity int) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return s.snapshotLocked(), fmt.Errorf("%w: product %d is not in the cart", apperrors.ErrNotFound, productID)
	}
	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	if quantity <= 0 {
		s.lines = slices.Delete(s.lines, idx, idx+1)
	} else {
		s.lines[idx].Quantity = quantity
	}
	return s.snapshotLocked(), nil
}

func (s *checkoutService) RemoveLine(_ context.Context, productID int64) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	if idx := s.indexOf(productID); idx >= 0 {
		s.lines = slices.Delete(s.lines, idx, idx+1)
	}
	return s.snapshotLocked(), nil
}

func (s *checkoutService) SetDiscount(_ context.Context, discount domain.DiscountSpec) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if discount.Kind == "" {
		discount.Kind = domain.DiscountFixed
	}
	if !discount.Kind.Valid() {
		return s.snapshotLocked(), apperrors.NewValidationError([]string{fmt.Sprintf("unknown discount kind %q", discount.Kind)})
	}
	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	// Out-of-range values are kept as entered; totals clamp them and Warnings reports them.
	s.discount = discount
	return s.snapshotLocked(), nil
}

func (s *checkoutService) SetFee(_ context.Context, fee decimal.Decimal) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	s.fee = fee
	return s.snapshotLocked(), nil
}

func (s *checkoutService) SetDetails(_ context.Context, details domain.CartDetails) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if details.PaymentMethod == "" {
		details.PaymentMethod = domain.PaymentCash
	}
	if details.Status == "" {
		details.Status = domain.OrderCompleted
	}
	var msgs []string
	if !details.PaymentMethod.Valid() {
		msgs = append(msgs, fmt.Sprintf("unknown payment method %q", details.PaymentMethod))
	}
	if !details.Status.Valid() {
		msgs = append(msgs, fmt.Sprintf("unknown order status %q", details.Status))
	}
	if err := apperrors.NewValidationError(msgs); err != nil {
		return s.snapshotLocked(), err
	}
	if err := s.beginMutationLocked(); err != nil {
		return s.snapshotLocked(), err
	}
	details.CashierName = strings.TrimSpace(details.CashierName)
	s.details = details
	return s.snapshotLocked(), nil
}

func (s *checkoutService) Confirm(ctx context.Context) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case domain.StateConfirming:
		return s.snapshotLocked(), nil
	case domain.StatePersisting:
		return s.snapshotLocked(), fmt.Errorf("%w: cart is %s", apperrors.ErrInvalidState, s.state)
	}
	if err := accounting.Validate(s.inputLocked()); err != nil {
		s.LogDebug(ctx, "Checkout blocked by warnings", slog.String("error", err.Error()))
		return s.snapshotLocked(), err
	}
	s.state = domain.StateConfirming
	return s.snapshotLocked(), nil
}

func (s *checkoutService) Cancel(_ context.Context) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case domain.StateConfirming:
		s.state = domain.StateBuilding
	case domain.StatePersisting, domain.StateCompleted:
		return s.snapshotLocked(), fmt.Errorf("%w: cannot cancel a %s cart", apperrors.ErrInvalidState, s.state)
	}
	return s.snapshotLocked(), nil
}

func (s *checkoutService) Checkout(ctx context.Context) (*domain.LocalOrder, error) {
	s.mu.Lock()
	if s.state != domain.StateConfirming {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: checkout requires a confirmed cart, cart is %s", apperrors.ErrInvalidState, state)
	}
	if err := accounting.Validate(s.inputLocked()); err != nil {
		s.state = domain.StateBuilding
		s.mu.Unlock()
		return nil, err
	}
	totals := accounting.ComputeTotals(s.lines, s.discount, s.fee)
	draft := s.draftLocked(totals)
	s.state = domain.StatePersisting
	s.mu.Unlock()

	order, err := s.orders.AppendOrder(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = domain.StateBuilding
		s.metrics.CheckoutFailed()
		s.LogError(ctx, err, "Checkout failed, cart kept")
		if !errors.Is(err, apperrors.ErrPersistence) && !errors.Is(err, apperrors.ErrValidation) {
			err = fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
		}
		return nil, err
	}

	s.state = domain.StateCompleted
	s.lastOrder = order
	s.lines = []domain.CartLine{}
	s.discount = domain.NoDiscount()
	s.fee = decimal.Zero
	s.details.Note = ""

	s.metrics.CheckoutCompleted(totals.GrandTotal.InexactFloat64())
	s.LogInfo(ctx, "Checkout completed",
		slog.String("order_id", order.ID),
		slog.String("grand_total", totals.GrandTotal.StringFixed(2)))
	result := *order
	return &result, nil
}

// draftLocked freezes the cart using the effective (clamped) discount and fee.
func (s *checkoutService) draftLocked(totals domain.PricingResult) domain.OrderDraft {
	var customerID *int64
	if s.details.CustomerID != nil {
		id := *s.details.CustomerID
		customerID = &id
	}
	return domain.OrderDraft{
		Items:         mapping.ToOrderItems(s.lines),
		CashierName:   s.details.CashierName,
		PaymentMethod: s.details.PaymentMethod.Code(),
		PaymentTitle:  s.details.PaymentMethod.Title(),
		Discount:      totals.EffectiveDiscount,
		Fee:           totals.EffectiveFee,
		Note:          strings.TrimSpace(s.details.Note),
		CustomerID:    customerID,
		Status:        s.details.Status,
	}
}
