package services

import (
	"context"
	"io"
)

// ExportSvc writes spreadsheet exports.
type ExportSvc interface {
	ExportEmployees(ctx context.Context, w io.Writer) error
	ExportSuppliers(ctx context.Context, w io.Writer) error
	ExportOrders(ctx context.Context, w io.Writer) error
}

// ReceiptSvc renders and prints the receipt of a local order.
type ReceiptSvc interface {
	// PrintOrder sends the receipt to the configured printer and returns a text preview.
	PrintOrder(ctx context.Context, orderID string) (string, error)
}
