package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CheckoutSvc drives the single cart of the terminal through Building, Confirming,
// Persisting and Completed. Every mutation returns the resulting snapshot.
type CheckoutSvc interface {
	Snapshot(ctx context.Context) domain.CartSnapshot
	AddLine(ctx context.Context, line domain.CartLine) (domain.CartSnapshot, error)
	UpdateQuantity(ctx context.Context, productID int64, quantity int) (domain.CartSnapshot, error)
	RemoveLine(ctx context.Context, productID int64) (domain.CartSnapshot, error)
	SetDiscount(ctx context.Context, discount domain.DiscountSpec) (domain.CartSnapshot, error)
	SetFee(ctx context.Context, fee decimal.Decimal) (domain.CartSnapshot, error)
	SetDetails(ctx context.Context, details domain.CartDetails) (domain.CartSnapshot, error)

	// Confirm validates the cart and moves it to Confirming.
	Confirm(ctx context.Context) (domain.CartSnapshot, error)

	// Cancel returns a confirming cart to Building unchanged.
	Cancel(ctx context.Context) (domain.CartSnapshot, error)

	// Checkout persists a confirmed cart as a local order.
	Checkout(ctx context.Context) (*domain.LocalOrder, error)
}
