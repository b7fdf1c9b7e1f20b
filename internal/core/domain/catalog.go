package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Page is one page of a remote listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"total_pages"`
}

// ProductStatus is the publication state of a remote product.
type ProductStatus string

const (
	ProductPublish ProductStatus = "publish"
	ProductDraft   ProductStatus = "draft"
)

// Valid reports whether s can be sent to the catalog.
func (s ProductStatus) Valid() bool {
	return s == ProductPublish || s == ProductDraft
}

type Image struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a remote catalog product. Prices are parsed into decimals; an empty price is zero.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Status        ProductStatus   `json:"status"`
	Price         decimal.Decimal `json:"price"`
	RegularPrice  decimal.Decimal `json:"regular_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity *int            `json:"stock_quantity,omitempty"`
	Images        []Image         `json:"images"`
	Categories    []CategoryRef   `json:"categories"`
}

type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Parent int64  `json:"parent"`
	Count  int    `json:"count"`
}

type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Customer struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Username  string  `json:"username"`
	Billing   Billing `json:"billing"`
}

// NewCustomer is the input for creating a remote customer.
type NewCustomer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type OnlineOrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// OnlineOrder is an order placed through the hosted store.
type OnlineOrder struct {
	ID                 int64             `json:"id"`
	Status             string            `json:"status"`
	DateCreated        time.Time         `json:"date_created"`
	Total              decimal.Decimal   `json:"total"`
	PaymentMethodTitle string            `json:"payment_method_title"`
	CustomerID         int64             `json:"customer_id"`
	Billing            Billing           `json:"billing"`
	LineItems          []OnlineOrderLine `json:"line_items"`
}

// ProductQuery filters a product listing.
type ProductQuery struct {
	Page       int
	PerPage    int
	Search     string
	CategoryID *int64
}

// ListQuery filters categories, customers and online orders.
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
}

// CatalogBootstrap is the first data the POS screen needs.
type CatalogBootstrap struct {
	Categories []Category `json:"categories"`
	Customers  []Customer `json:"customers"`
}
