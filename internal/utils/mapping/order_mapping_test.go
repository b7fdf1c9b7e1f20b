package mapping_test

import (
	"testing"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToOrderItems(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 7, Name: "Tea", UnitPrice: decimal.NewFromInt(3), Quantity: 2},
		{ProductID: 9, Name: "Cake", UnitPrice: decimal.RequireFromString("4.5"), Quantity: 1},
	}
	items := mapping.ToOrderItems(lines)

	assert.Equal(t, []domain.OrderItem{
		{ProductID: 7, Name: "Tea", Quantity: 2, Price: decimal.NewFromInt(3)},
		{ProductID: 9, Name: "Cake", Quantity: 1, Price: decimal.RequireFromString("4.5")},
	}, items)
	assert.Equal(t, "Tea × 2 × 3.00\nCake × 1 × 4.50", mapping.DescribeItems(items))
}
