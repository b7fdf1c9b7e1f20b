package mapping

import (
	"strconv"
	"strings"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
)

// ToOrderItems freezes cart lines into order items.
func ToOrderItems(lines []domain.CartLine) []domain.OrderItem {
	items := make([]domain.OrderItem, len(lines))
	for i, l := range lines {
		items[i] = domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		}
	}
	return items
}

// DescribeItems renders one "name × qty × price" line per item for exports.
func DescribeItems(items []domain.OrderItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.Name + " × " + strconv.Itoa(it.Quantity) + " × " + utils.FormatMoney(it.Price)
	}
	return strings.Join(parts, "\n")
}
