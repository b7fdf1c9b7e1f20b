package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=publish draft"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
}

// ListParams are the query parameters of catalog listings.
type ListParams struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PerPage    int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search"`
	CategoryID *int64 `form:"category"`
}
