package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus values a local order can be saved with.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderProcessing OrderStatus = "processing"
)

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	return s == OrderCompleted || s == OrderProcessing
}

// OrderItem is a frozen copy of a cart line.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// LineTotal is price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderDraft is everything a finalized sale carries before the store assigns identity.
type OrderDraft struct {
	Items         []OrderItem     `json:"items"`
	CashierName   string          `json:"cashier_name"`
	PaymentMethod string          `json:"payment_method"`
	PaymentTitle  string          `json:"payment_title"`
	Discount      decimal.Decimal `json:"discount"`
	Fee           decimal.Decimal `json:"fee"`
	Note          string          `json:"note,omitempty"`
	CustomerID    *int64          `json:"customer_id,omitempty"`
	Status        OrderStatus     `json:"status"`
}

// LocalOrder is an immutable, locally persisted invoice.
type LocalOrder struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	OrderDraft
}

// ItemCount is the number of units on the order.
func (o LocalOrder) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity over the items.
func (o LocalOrder) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// Matches reports whether the order id starts with query or the cashier name contains it.
func (o LocalOrder) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.CashierName), q)
}
