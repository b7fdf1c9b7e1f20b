package accounting_test

import (
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(id int64, price string, qty int) domain.CartLine {
	return domain.CartLine{ProductID: id, Name: "item", UnitPrice: d(price), Quantity: qty}
}

func fixed(v string) domain.DiscountSpec {
	return domain.DiscountSpec{Kind: domain.DiscountFixed, Value: d(v)}
}

func percent(v string) domain.DiscountSpec {
	return domain.DiscountSpec{Kind: domain.DiscountPercent, Value: d(v)}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.CartLine
		discount     domain.DiscountSpec
		fee          string
		wantSubtotal string
		wantDiscount string
		wantFee      string
		wantTotal    string
	}{
		{
			name:         "fixed discount and fee",
			lines:        []domain.CartLine{line(1, "100", 2)},
			discount:     fixed("50"),
			fee:          "10",
			wantSubtotal: "200", wantDiscount: "50", wantFee: "10", wantTotal: "160",
		},
		{
			name:         "percent above range clamps to full subtotal",
			lines:        []domain.CartLine{line(1, "100", 1)},
			discount:     percent("120"),
			fee:          "0",
			wantSubtotal: "100", wantDiscount: "100", wantFee: "0", wantTotal: "0",
		},
		{
			name:         "fixed discount above subtotal clamps",
			lines:        []domain.CartLine{line(1, "100", 1)},
			discount:     fixed("500"),
			fee:          "0",
			wantSubtotal: "100", wantDiscount: "100", wantFee: "0", wantTotal: "0",
		},
		{
			name:         "negative discount and fee are ignored",
			lines:        []domain.CartLine{line(1, "40", 1)},
			discount:     fixed("-5"),
			fee:          "-3",
			wantSubtotal: "40", wantDiscount: "0", wantFee: "0", wantTotal: "40",
		},
		{
			name:         "percent discount",
			lines:        []domain.CartLine{line(1, "19.99", 3)},
			discount:     percent("10"),
			fee:          "2.5",
			wantSubtotal: "59.97", wantDiscount: "5.997", wantFee: "2.5", wantTotal: "56.473",
		},
		{
			name:         "empty cart",
			discount:     fixed("0"),
			fee:          "0",
			wantSubtotal: "0", wantDiscount: "0", wantFee: "0", wantTotal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.ComputeTotals(tt.lines, tt.discount, d(tt.fee))
			assert.True(t, d(tt.wantSubtotal).Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, d(tt.wantDiscount).Equal(got.EffectiveDiscount), "discount %s", got.EffectiveDiscount)
			assert.True(t, d(tt.wantFee).Equal(got.EffectiveFee), "fee %s", got.EffectiveFee)
			assert.True(t, d(tt.wantTotal).Equal(got.GrandTotal), "total %s", got.GrandTotal)
			assert.False(t, got.GrandTotal.IsNegative())
		})
	}
}

func TestComputeTotals_ReorderInvariant(t *testing.T) {
	lines := []domain.CartLine{line(1, "0.1", 3), line(2, "12.75", 2), line(3, "3.33", 7)}
	reversed := []domain.CartLine{lines[2], lines[1], lines[0]}

	a := accounting.ComputeTotals(lines, percent("15"), d("1"))
	b := accounting.ComputeTotals(reversed, percent("15"), d("1"))

	assert.True(t, a.Subtotal.Equal(b.Subtotal))
	assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
}

func TestWarnings(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		in := accounting.CheckoutInput{
			Lines:       []domain.CartLine{line(1, "10", 1)},
			CashierName: "Sam",
			Discount:    fixed("5"),
			Fee:         d("0"),
		}
		assert.Empty(t, accounting.Warnings(in))
		assert.NoError(t, accounting.Validate(in))
	})

	t.Run("collects every message", func(t *testing.T) {
		in := accounting.CheckoutInput{
			Discount: fixed("-1"),
			Fee:      d("-2"),
		}
		msgs := accounting.Warnings(in)
		assert.Equal(t, []string{
			accounting.MsgEmptyCart,
			accounting.MsgMissingCashier,
			accounting.MsgNegativeDiscount,
			accounting.MsgNegativeFee,
		}, msgs)

		err := accounting.Validate(in)
		require.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, msgs, apperrors.ValidationMessages(err))
	})

	t.Run("percent out of range", func(t *testing.T) {
		in := accounting.CheckoutInput{
			Lines:       []domain.CartLine{line(1, "100", 1)},
			CashierName: "Sam",
			Discount:    percent("120"),
		}
		assert.Equal(t, []string{accounting.MsgPercentRange}, accounting.Warnings(in))
	})

	t.Run("negative percent", func(t *testing.T) {
		in := accounting.CheckoutInput{
			Lines:       []domain.CartLine{line(1, "100", 1)},
			CashierName: "Sam",
			Discount:    percent("-5"),
		}
		assert.Equal(t, []string{accounting.MsgNegativeDiscount, accounting.MsgPercentRange}, accounting.Warnings(in))
	})

	t.Run("fixed discount above subtotal", func(t *testing.T) {
		in := accounting.CheckoutInput{
			Lines:       []domain.CartLine{line(1, "100", 1)},
			CashierName: "Sam",
			Discount:    fixed("500"),
		}
		assert.Equal(t, []string{accounting.MsgDiscountTooLarge}, accounting.Warnings(in))
	})
}

func TestOrderTotal(t *testing.T) {
	order := domain.LocalOrder{OrderDraft: domain.OrderDraft{
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Price: d("10.005")},
			{ProductID: 2, Quantity: 1, Price: d("5")},
		},
		Discount: d("3"),
		Fee:      d("1"),
	}}
	assert.Equal(t, "23.01", accounting.OrderTotal(order).String())

	over := domain.LocalOrder{OrderDraft: domain.OrderDraft{
		Items:    []domain.OrderItem{{ProductID: 1, Quantity: 1, Price: d("5")}},
		Discount: d("50"),
	}}
	assert.True(t, accounting.OrderTotal(over).IsZero())
}
