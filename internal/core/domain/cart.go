package domain

import "github.com/shopspring/decimal"

// DiscountKind selects how a discount value is interpreted.
type DiscountKind string

const (
	DiscountFixed   DiscountKind = "fixed"
	DiscountPercent DiscountKind = "percent"
)

// Valid reports whether k is a known kind.
func (k DiscountKind) Valid() bool {
	return k == DiscountFixed || k == DiscountPercent
}

// DiscountSpec is either a fixed money amount or a percentage of the subtotal.
type DiscountSpec struct {
	Kind  DiscountKind    `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// NoDiscount is the cart default after every sale.
func NoDiscount() DiscountSpec {
	return DiscountSpec{Kind: DiscountFixed, Value: decimal.Zero}
}

// CartLine is one product in the cart. Product id equality identifies a line.
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PricingResult is derived from the cart on every change and never stored.
type PricingResult struct {
	Subtotal          decimal.Decimal `json:"subtotal"`
	EffectiveDiscount decimal.Decimal `json:"effective_discount"`
	EffectiveFee      decimal.Decimal `json:"effective_fee"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
}

// PaymentMethod is how the customer paid at the counter.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether m is a known method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Code is the payment method id stored on the order.
func (m PaymentMethod) Code() string {
	if m == PaymentCard {
		return "pos-card"
	}
	return "pos-cash"
}

// Title is the human-readable payment label stored on the order.
func (m PaymentMethod) Title() string {
	if m == PaymentCard {
		return "Wallet"
	}
	return "Cash"
}

// CheckoutState is the position of the cart in the sale workflow.
type CheckoutState string

const (
	StateBuilding   CheckoutState = "building"
	StateConfirming CheckoutState = "confirming"
	StatePersisting CheckoutState = "persisting"
	StateCompleted  CheckoutState = "completed"
)

// CartDetails are the sale attributes that survive across sales, plus the per-sale note.
type CartDetails struct {
	CashierName   string        `json:"cashier_name"`
	CustomerID    *int64        `json:"customer_id,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        OrderStatus   `json:"status"`
	Note          string        `json:"note"`
}

// CartSnapshot is a read-only view of the checkout session.
type CartSnapshot struct {
	State     CheckoutState   `json:"state"`
	Lines     []CartLine      `json:"lines"`
	Discount  DiscountSpec    `json:"discount"`
	Fee       decimal.Decimal `json:"fee"`
	Details   CartDetails     `json:"details"`
	Totals    PricingResult   `json:"totals"`
	Warnings  []string        `json:"warnings"`
	LastOrder *LocalOrder     `json:"last_order,omitempty"`
}
