package dto

import (
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// AddLineRequest adds a product to the cart. A missing quantity counts as one.
type AddLineRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// UpdateQuantityRequest sets a line quantity. Zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type DiscountRequest struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

type FeeRequest struct {
	Fee decimal.Decimal `json:"fee"`
}

type DetailsRequest struct {
	CashierName   string `json:"cashier_name"`
	CustomerID    *int64 `json:"customer_id"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Note          string `json:"note"`
}

func (r DetailsRequest) ToDomain() domain.CartDetails {
	return domain.CartDetails{
		CashierName:   r.CashierName,
		CustomerID:    r.CustomerID,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Status:        domain.OrderStatus(r.Status),
		Note:          r.Note,
	}
}

type CartLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type TotalsResponse struct {
	Subtotal   string `json:"subtotal"`
	Discount   string `json:"discount"`
	Fee        string `json:"fee"`
	GrandTotal string `json:"grand_total"`
}

// CartResponse is the checkout session as shown on the POS screen.
type CartResponse struct {
	State     string             `json:"state"`
	Lines     []CartLineResponse `json:"lines"`
	Discount  DiscountRequest    `json:"discount"`
	Fee       string             `json:"fee"`
	Details   DetailsRequest     `json:"details"`
	Totals    TotalsResponse     `json:"totals"`
	Warnings  []string           `json:"warnings"`
	CanSubmit bool               `json:"can_submit"`
	LastOrder *OrderResponse     `json:"last_order,omitempty"`
}

func ToCartResponse(s domain.CartSnapshot) CartResponse {
	lines := make([]CartLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: utils.FormatMoney(l.UnitPrice),
			Quantity:  l.Quantity,
			LineTotal: utils.FormatMoney(l.LineTotal()),
		}
	}
	resp := CartResponse{
		State:    string(s.State),
		Lines:    lines,
		Discount: DiscountRequest{Kind: string(s.Discount.Kind), Value: s.Discount.Value},
		Fee:      s.Fee.String(),
		Details: DetailsRequest{
			CashierName:   s.Details.CashierName,
			CustomerID:    s.Details.CustomerID,
			PaymentMethod: string(s.Details.PaymentMethod),
			Status:        string(s.Details.Status),
			Note:          s.Details.Note,
		},
		Totals: TotalsResponse{
			Subtotal:   utils.FormatMoney(s.Totals.Subtotal),
			Discount:   utils.FormatMoney(s.Totals.EffectiveDiscount),
			Fee:        utils.FormatMoney(s.Totals.EffectiveFee),
			GrandTotal: utils.FormatMoney(s.Totals.GrandTotal),
		},
		Warnings:  s.Warnings,
		CanSubmit: len(s.Warnings) == 0,
	}
	if s.LastOrder != nil {
		last := ToOrderResponse(s.LastOrder)
		resp.LastOrder = &last
	}
	return resp
}
