package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
)

type OrderItemResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"line_total"`
}

// OrderResponse is a local order with its derived totals.
type OrderResponse struct {
	ID            string              `json:"id"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
	ItemCount     int                 `json:"item_count"`
	CashierName   string              `json:"cashier_name"`
	PaymentMethod string              `json:"payment_method"`
	PaymentTitle  string              `json:"payment_title"`
	Subtotal      string              `json:"subtotal"`
	Discount      string              `json:"discount"`
	Fee           string              `json:"fee"`
	Total         string              `json:"total"`
	Note          string              `json:"note,omitempty"`
	CustomerID    *int64              `json:"customer_id,omitempty"`
	Status        string              `json:"status"`
}

func ToOrderResponse(o *domain.LocalOrder) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     utils.FormatMoney(it.Price),
			LineTotal: utils.FormatMoney(it.LineTotal()),
		}
	}
	return OrderResponse{
		ID:            o.ID,
		CreatedAt:     o.CreatedAt,
		Items:         items,
		ItemCount:     o.ItemCount(),
		CashierName:   o.CashierName,
		PaymentMethod: o.PaymentMethod,
		PaymentTitle:  o.PaymentTitle,
		Subtotal:      utils.FormatMoney(o.Subtotal()),
		Discount:      utils.FormatMoney(o.Discount),
		Fee:           utils.FormatMoney(o.Fee),
		Total:         utils.FormatMoney(accounting.OrderTotal(*o)),
		Note:          o.Note,
		CustomerID:    o.CustomerID,
		Status:        string(o.Status),
	}
}

func ToOrderResponses(orders []domain.LocalOrder) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}

// ReceiptResponse is the plain-text print view returned after printing.
type ReceiptResponse struct {
	OrderID string `json:"order_id"`
	Preview string `json:"preview"`
}
