package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
)

// OrderReaderSvc defines read operations for local orders
type OrderReaderSvc interface {
	// ListOrders returns every local order, most recent first.
	ListOrders(ctx context.Context) ([]domain.LocalOrder, error)

	// GetOrder returns a single order or apperrors.ErrNotFound.
	GetOrder(ctx context.Context, orderID string) (*domain.LocalOrder, error)

	// SearchOrders filters by id prefix or cashier name, most recent first.
	SearchOrders(ctx context.Context, query string) ([]domain.LocalOrder, error)
}

// OrderAppender persists finalized sales.
type OrderAppender interface {
	AppendOrder(ctx context.Context, draft domain.OrderDraft) (*domain.LocalOrder, error)
}

// OrderWriterSvc defines write operations for local orders
type OrderWriterSvc interface {
	OrderAppender

	// RemoveOrder deletes one order. Unknown ids are a no-op.
	RemoveOrder(ctx context.Context, orderID string) error

	// ClearOrders deletes every order.
	ClearOrders(ctx context.Context) error
}

// OrderSvcFacade combines all local order service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}
