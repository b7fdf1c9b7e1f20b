package woocommerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

func pageQuery(page, perPage int) url.Values {
	page, perPage = pagination.Normalize(page, perPage)
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

func totalPages(h http.Header) int {
	return pagination.ParseTotalPages(h.Get(totalPagesHeader))
}

func (c *Client) ListProducts(ctx context.Context, pq domain.ProductQuery) (domain.Page[domain.Product], error) {
	q := pageQuery(pq.Page, pq.PerPage)
	if pq.Search != "" {
		q.Set("search", pq.Search)
	}
	if pq.CategoryID != nil {
		q.Set("category", strconv.FormatInt(*pq.CategoryID, 10))
	}
	var raw []wcProduct
	h, err := c.do(ctx, http.MethodGet, "products", q, nil, &raw)
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	items := make([]domain.Product, 0, len(raw))
	for _, p := range raw {
		prod, err := p.toDomain()
		if err != nil {
			return domain.Page[domain.Product]{}, remoteErr("GET products", err)
		}
		items = append(items, prod)
	}
	return domain.Page[domain.Product]{Items: items, TotalPages: totalPages(h)}, nil
}

func (c *Client) ListCategories(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.Category], error) {
	var raw []wcCategory
	h, err := c.do(ctx, http.MethodGet, "products/categories", pageQuery(lq.Page, lq.PerPage), nil, &raw)
	if err != nil {
		return domain.Page[domain.Category]{}, err
	}
	items := make([]domain.Category, len(raw))
	for i, cat := range raw {
		items[i] = cat.toDomain()
	}
	return domain.Page[domain.Category]{Items: items, TotalPages: totalPages(h)}, nil
}

func (c *Client) ListCustomers(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.Customer], error) {
	q := pageQuery(lq.Page, lq.PerPage)
	if lq.Search != "" {
		q.Set("search", lq.Search)
	}
	var raw []wcCustomer
	h, err := c.do(ctx, http.MethodGet, "customers", q, nil, &raw)
	if err != nil {
		return domain.Page[domain.Customer]{}, err
	}
	items := make([]domain.Customer, len(raw))
	for i, cu := range raw {
		items[i] = cu.toDomain()
	}
	return domain.Page[domain.Customer]{Items: items, TotalPages: totalPages(h)}, nil
}

func (c *Client) ListOrders(ctx context.Context, lq domain.ListQuery) (domain.Page[domain.OnlineOrder], error) {
	q := pageQuery(lq.Page, lq.PerPage)
	if lq.Search != "" {
		q.Set("search", lq.Search)
	}
	var raw []wcOrder
	h, err := c.do(ctx, http.MethodGet, "orders", q, nil, &raw)
	if err != nil {
		return domain.Page[domain.OnlineOrder]{}, err
	}
	items := make([]domain.OnlineOrder, 0, len(raw))
	for _, o := range raw {
		order, err := o.toDomain()
		if err != nil {
			return domain.Page[domain.OnlineOrder]{}, remoteErr("GET orders", err)
		}
		items = append(items, order)
	}
	return domain.Page[domain.OnlineOrder]{Items: items, TotalPages: totalPages(h)}, nil
}

// CreateCustomer registers a customer. The store needs a unique username, so the email is used
// when present and pos_<unix-ms> otherwise.
func (c *Client) CreateCustomer(ctx context.Context, nc domain.NewCustomer) (*domain.Customer, error) {
	username := nc.Email
	if username == "" {
		username = fmt.Sprintf("pos_%d", c.now().UnixMilli())
	}
	payload := wcCustomer{
		Email:     nc.Email,
		FirstName: nc.FirstName,
		LastName:  nc.LastName,
		Username:  username,
		Billing: wcBilling{
			FirstName: nc.FirstName,
			LastName:  nc.LastName,
			Email:     nc.Email,
			Phone:     nc.Phone,
		},
	}
	var raw wcCustomer
	if _, err := c.do(ctx, http.MethodPost, "customers", nil, payload, &raw); err != nil {
		return nil, err
	}
	customer := raw.toDomain()
	return &customer, nil
}

func (c *Client) UpdateProductStatus(ctx context.Context, productID int64, status domain.ProductStatus) (*domain.Product, error) {
	path := "products/" + strconv.FormatInt(productID, 10)
	var raw wcProduct
	if _, err := c.do(ctx, http.MethodPut, path, nil, map[string]string{"status": string(status)}, &raw); err != nil {
		return nil, err
	}
	product, err := raw.toDomain()
	if err != nil {
		return nil, remoteErr("PUT "+path, err)
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*domain.Product, error) {
	payload := map[string]string{
		"name":          name,
		"regular_price": price.String(),
		"status":        string(domain.ProductPublish),
	}
	var raw wcProduct
	if _, err := c.do(ctx, http.MethodPost, "products", nil, payload, &raw); err != nil {
		return nil, err
	}
	product, err := raw.toDomain()
	if err != nil {
		return nil, remoteErr("POST products", err)
	}
	return &product, nil
}

func (c *Client) CreateOrder(ctx context.Context, order domain.LocalOrder) (*domain.OnlineOrder, error) {
	var raw wcOrder
	if _, err := c.do(ctx, http.MethodPost, "orders", nil, newOrderPayload(order), &raw); err != nil {
		return nil, err
	}
	online, err := raw.toDomain()
	if err != nil {
		return nil, remoteErr("POST orders", err)
	}
	return &online, nil
}
