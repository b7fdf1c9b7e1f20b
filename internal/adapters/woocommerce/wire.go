package woocommerce

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
)

// WooCommerce dates are local store time without a zone.
const wcTimeLayout = "2006-01-02T15:04:05"

type wcImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type wcCategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type wcProduct struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	Price         string          `json:"price"`
	RegularPrice  string          `json:"regular_price"`
	SalePrice     string          `json:"sale_price"`
	StockQuantity *int            `json:"stock_quantity"`
	Images        []wcImage       `json:"images"`
	Categories    []wcCategoryRef `json:"categories"`
}

type wcCategory struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Parent int64  `json:"parent"`
	Count  int    `json:"count"`
}

type wcBilling struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type wcCustomer struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username,omitempty"`
	Billing   wcBilling `json:"billing"`
}

type wcLineItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total,omitempty"`
}

type wcFeeLine struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

type wcMeta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type wcOrder struct {
	ID                 int64        `json:"id"`
	Status             string       `json:"status"`
	DateCreated        string       `json:"date_created"`
	Total              string       `json:"total"`
	PaymentMethodTitle string       `json:"payment_method_title"`
	CustomerID         int64        `json:"customer_id"`
	Billing            wcBilling    `json:"billing"`
	LineItems          []wcLineItem `json:"line_items"`
}

type wcNewOrder struct {
	PaymentMethod      string       `json:"payment_method"`
	PaymentMethodTitle string       `json:"payment_method_title"`
	SetPaid            bool         `json:"set_paid"`
	Status             string       `json:"status"`
	CustomerID         int64        `json:"customer_id,omitempty"`
	LineItems          []wcLineItem `json:"line_items"`
	CustomerNote       string       `json:"customer_note"`
	FeeLines           []wcFeeLine  `json:"fee_lines"`
	MetaData           []wcMeta     `json:"meta_data"`
}

func (p wcProduct) toDomain() (domain.Product, error) {
	price, err := utils.ParseMoney(p.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d price %q: %w", p.ID, p.Price, err)
	}
	regular, err := utils.ParseMoney(p.RegularPrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d regular price %q: %w", p.ID, p.RegularPrice, err)
	}
	sale, err := utils.ParseMoney(p.SalePrice)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product %d sale price %q: %w", p.ID, p.SalePrice, err)
	}
	images := make([]domain.Image, len(p.Images))
	for i, img := range p.Images {
		images[i] = domain.Image{ID: img.ID, Src: img.Src, Alt: img.Alt}
	}
	cats := make([]domain.CategoryRef, len(p.Categories))
	for i, c := range p.Categories {
		cats[i] = domain.CategoryRef{ID: c.ID, Name: c.Name}
	}
	return domain.Product{
		ID:            p.ID,
		Name:          p.Name,
		Status:        domain.ProductStatus(p.Status),
		Price:         price,
		RegularPrice:  regular,
		SalePrice:     sale,
		StockQuantity: p.StockQuantity,
		Images:        images,
		Categories:    cats,
	}, nil
}

func (c wcCategory) toDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name, Parent: c.Parent, Count: c.Count}
}

func (b wcBilling) toDomain() domain.Billing {
	return domain.Billing{FirstName: b.FirstName, LastName: b.LastName, Email: b.Email, Phone: b.Phone}
}

func (c wcCustomer) toDomain() domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Username:  c.Username,
		Billing:   c.Billing.toDomain(),
	}
}

func (o wcOrder) toDomain() (domain.OnlineOrder, error) {
	total, err := utils.ParseMoney(o.Total)
	if err != nil {
		return domain.OnlineOrder{}, fmt.Errorf("order %d total %q: %w", o.ID, o.Total, err)
	}
	var created time.Time
	if o.DateCreated != "" {
		created, err = time.Parse(wcTimeLayout, o.DateCreated)
		if err != nil {
			return domain.OnlineOrder{}, fmt.Errorf("order %d date %q: %w", o.ID, o.DateCreated, err)
		}
	}
	lines := make([]domain.OnlineOrderLine, len(o.LineItems))
	for i, li := range o.LineItems {
		lt, err := utils.ParseMoney(li.Total)
		if err != nil {
			return domain.OnlineOrder{}, fmt.Errorf("order %d line total %q: %w", o.ID, li.Total, err)
		}
		lines[i] = domain.OnlineOrderLine{ProductID: li.ProductID, Name: li.Name, Quantity: li.Quantity, Total: lt}
	}
	return domain.OnlineOrder{
		ID:                 o.ID,
		Status:             o.Status,
		DateCreated:        created,
		Total:              total,
		PaymentMethodTitle: o.PaymentMethodTitle,
		CustomerID:         o.CustomerID,
		Billing:            o.Billing.toDomain(),
		LineItems:          lines,
	}, nil
}

// newOrderPayload turns a local sale into a paid remote order. Discount and fee travel as fee lines.
func newOrderPayload(order domain.LocalOrder) wcNewOrder {
	items := make([]wcLineItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = wcLineItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	var notes []string
	if n := strings.TrimSpace(order.Note); n != "" {
		notes = append(notes, n)
	}
	notes = append(notes, "Cashier: "+order.CashierName)

	fees := []wcFeeLine{}
	if order.Discount.IsPositive() {
		fees = append(fees, wcFeeLine{Name: "Discount", Total: order.Discount.Neg().String()})
	}
	if order.Fee.IsPositive() {
		fees = append(fees, wcFeeLine{Name: "Extra Fee", Total: order.Fee.String()})
	}

	payload := wcNewOrder{
		PaymentMethod:      order.PaymentMethod,
		PaymentMethodTitle: order.PaymentTitle,
		SetPaid:            true,
		Status:             string(order.Status),
		LineItems:          items,
		CustomerNote:       strings.Join(notes, " \n"),
		FeeLines:           fees,
		MetaData:           []wcMeta{{Key: "cashier_name", Value: order.CashierName}},
	}
	if order.CustomerID != nil {
		payload.CustomerID = *order.CustomerID
	}
	return payload
}
