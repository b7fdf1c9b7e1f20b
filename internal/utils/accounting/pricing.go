package accounting

import (
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Checkout warnings, in the order Validate reports them.
const (
	MsgEmptyCart        = "add products to the cart"
	MsgMissingCashier   = "select a cashier"
	MsgNegativeDiscount = "discount must not be negative"
	MsgPercentRange     = "percentage discount must be between 0 and 100"
	MsgNegativeFee      = "fee must not be negative"
	MsgDiscountTooLarge = "discount exceeds the subtotal"
)

var maxPercent = decimal.NewFromInt(100)

// CheckoutInput is what Validate needs to decide whether a sale may be finalized.
type CheckoutInput struct {
	Lines       []domain.CartLine
	CashierName string
	Discount    domain.DiscountSpec
	Fee         decimal.Decimal
}

// Subtotal is the sum of unit price times quantity over the lines.
func Subtotal(lines []domain.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

// RawDiscount is the discount before clamping to the subtotal.
// Percent values are clamped to [0, 100] first.
func RawDiscount(subtotal decimal.Decimal, discount domain.DiscountSpec) decimal.Decimal {
	if discount.Kind == domain.DiscountPercent {
		pct := utils.Clamp(discount.Value, decimal.Zero, maxPercent)
		return utils.PercentOf(subtotal, pct)
	}
	return discount.Value
}

// EffectiveDiscount bounds a raw discount to [0, subtotal].
func EffectiveDiscount(subtotal, raw decimal.Decimal) decimal.Decimal {
	return utils.NonNegative(decimal.Min(raw, subtotal))
}

// GrandTotal is subtotal - discount + fee, floored at zero.
// The local order total uses the same formula.
func GrandTotal(subtotal, discount, fee decimal.Decimal) decimal.Decimal {
	return utils.NonNegative(subtotal.Sub(discount).Add(fee))
}

// ComputeTotals derives the pricing of a cart. It never fails; bad input is clamped.
func ComputeTotals(lines []domain.CartLine, discount domain.DiscountSpec, fee decimal.Decimal) domain.PricingResult {
	subtotal := Subtotal(lines)
	effDiscount := EffectiveDiscount(subtotal, RawDiscount(subtotal, discount))
	effFee := utils.NonNegative(fee)
	return domain.PricingResult{
		Subtotal:          subtotal,
		EffectiveDiscount: effDiscount,
		EffectiveFee:      effFee,
		GrandTotal:        GrandTotal(subtotal, effDiscount, effFee),
	}
}

// Warnings lists every reason the sale cannot be finalized yet. Empty means ready.
func Warnings(in CheckoutInput) []string {
	var msgs []string
	if len(in.Lines) == 0 {
		msgs = append(msgs, MsgEmptyCart)
	}
	if strings.TrimSpace(in.CashierName) == "" {
		msgs = append(msgs, MsgMissingCashier)
	}
	if in.Discount.Value.IsNegative() {
		msgs = append(msgs, MsgNegativeDiscount)
	}
	if in.Discount.Kind == domain.DiscountPercent && (in.Discount.Value.IsNegative() || in.Discount.Value.GreaterThan(maxPercent)) {
		msgs = append(msgs, MsgPercentRange)
	}
	if in.Fee.IsNegative() {
		msgs = append(msgs, MsgNegativeFee)
	}
	subtotal := Subtotal(in.Lines)
	if RawDiscount(subtotal, in.Discount).GreaterThan(subtotal) {
		msgs = append(msgs, MsgDiscountTooLarge)
	}
	return msgs
}

// Validate wraps Warnings into an apperrors.ValidationError, or returns nil.
func Validate(in CheckoutInput) error {
	return apperrors.NewValidationError(Warnings(in))
}

// OrderTotal is the stored total of a local order, rounded to two decimals.
func OrderTotal(order domain.LocalOrder) decimal.Decimal {
	return utils.RoundMoney(GrandTotal(order.Subtotal(), order.Discount, order.Fee))
}
