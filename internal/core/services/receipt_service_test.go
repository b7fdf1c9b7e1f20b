package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/adapters/database/memory"
	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/core/services"
	"github.com/SscSPs/pos_ledger_app/pkg/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceipt(t *testing.T) {
	customer := int64(12)
	order := domain.LocalOrder{
		ID:        "inv-123",
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		OrderDraft: domain.OrderDraft{
			Items:        []domain.OrderItem{{ProductID: 1, Name: "Coffee", Quantity: 2, Price: dec("10")}},
			CashierName:  "Sam",
			PaymentTitle: "Cash",
			Discount:     dec("2"),
			Fee:          dec("0.5"),
			Note:         "thanks",
			CustomerID:   &customer,
			Status:       domain.OrderCompleted,
		},
	}

	doc := services.RenderReceipt(order, "Corner Cafe", printer.Width58mm)
	preview := doc.Preview()

	assert.Contains(t, preview, "Corner Cafe")
	assert.Contains(t, preview, "inv-123")
	assert.Contains(t, preview, "2x Coffee")
	assert.Contains(t, preview, "20.00")
	assert.Contains(t, preview, "18.50")
	assert.Contains(t, preview, "thanks")
	assert.Contains(t, preview, "12")
	assert.NotEmpty(t, doc.Bytes())
}

func TestPrintOrder(t *testing.T) {
	ctx := context.Background()
	orders := services.NewOrderService(memory.NewKVStore())
	order, err := orders.AppendOrder(ctx, domain.OrderDraft{
		Items:        []domain.OrderItem{{ProductID: 1, Name: "Tea", Quantity: 1, Price: dec("3")}},
		CashierName:  "Sam",
		PaymentTitle: "Cash",
	})
	require.NoError(t, err)

	p := &fakePrinter{}
	svc := services.NewReceiptService(orders, p, "Corner Cafe", printer.Width80mm)

	preview, err := svc.PrintOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Contains(t, preview, "Tea")
	require.Len(t, p.jobs, 1)

	_, err = svc.PrintOrder(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	p.err = assert.AnError
	preview, err = svc.PrintOrder(ctx, order.ID)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotEmpty(t, preview)
}
