package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/pos_ledger_app/pkg/printer"
)

const receiptTimeFormat = "2006-01-02 15:04"

// receiptService renders local orders as ESC/POS receipts.
type receiptService struct {
	BaseService
	orders    portssvc.OrderReaderSvc
	printer   printer.Printer
	storeName string
	width     int
}

// NewReceiptService creates a receipt service printing on p.
func NewReceiptService(orders portssvc.OrderReaderSvc, p printer.Printer, storeName string, width int) portssvc.ReceiptSvc {
	return &receiptService{orders: orders, printer: p, storeName: storeName, width: width}
}

var _ portssvc.ReceiptSvc = (*receiptService)(nil)

func (s *receiptService) PrintOrder(ctx context.Context, orderID string) (string, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	doc := RenderReceipt(*order, s.storeName, s.width)
	if err := s.printer.Print(ctx, doc.Bytes()); err != nil {
		s.LogError(ctx, err, "Receipt printing failed", slog.String("order_id", orderID), slog.String("printer", s.printer.Name()))
		return doc.Preview(), fmt.Errorf("printing receipt: %w", err)
	}
	s.LogInfo(ctx, "Receipt printed", slog.String("order_id", orderID), slog.String("printer", s.printer.Name()))
	return doc.Preview(), nil
}

// RenderReceipt lays out the print view of an order. The totals are the ones stored with the order.
func RenderReceipt(order domain.LocalOrder, storeName string, width int) *printer.Document {
	doc := printer.NewDocument(width)

	doc.Align(printer.AlignCenter).Bold(true).Size(printer.SizeDouble)
	doc.Line(storeName)
	doc.Size(printer.SizeNormal).Bold(false)
	doc.Line("Invoice")
	doc.Line(order.ID)
	doc.Align(printer.AlignLeft)
	doc.Rule('-')

	doc.Columns("Date", order.CreatedAt.Local().Format(receiptTimeFormat))
	doc.Columns("Cashier", order.CashierName)
	if order.CustomerID != nil {
		doc.Columns("Customer", strconv.FormatInt(*order.CustomerID, 10))
	}
	doc.Columns("Payment", order.PaymentTitle)
	doc.Rule('-')

	for _, item := range order.Items {
		doc.Columns(fmt.Sprintf("%dx %s", item.Quantity, item.Name), utils.FormatMoney(item.LineTotal()))
	}
	doc.Rule('-')

	doc.Columns("Subtotal", utils.FormatMoney(order.Subtotal()))
	doc.Columns("Discount", utils.FormatMoney(order.Discount))
	doc.Columns("Fee", utils.FormatMoney(order.Fee))
	doc.Bold(true)
	doc.Columns("Total", utils.FormatMoney(accounting.OrderTotal(order)))
	doc.Bold(false)

	if order.Note != "" {
		doc.Rule('-')
		doc.Line(order.Note)
	}
	doc.Feed(3)
	doc.Cut()
	return doc
}
