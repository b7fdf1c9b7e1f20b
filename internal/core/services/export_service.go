package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/SscSPs/pos_ledger_app/internal/utils/accounting"
	"github.com/SscSPs/pos_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbooks.
const (
	SheetEmployees = "Employees"
	SheetSuppliers = "Suppliers"
	SheetOrders    = "Local Orders"
)

const exportTimeFormat = "2006-01-02 15:04:05"

var (
	employeeHeader = []any{"Employee", "Monthly salary", "Amount paid", "Remaining after payment", "Date", "Note"}
	supplierHeader = []any{"Supplier", "Total balance", "Amount paid", "Remaining after payment", "Date", "Note"}
	orderHeader    = []any{"Invoice", "Cashier", "Items", "Item details", "Discount", "Fee", "Total", "Payment method", "Status", "Date"}
)

// exportService writes xlsx workbooks.
type exportService struct {
	BaseService
	employees portssvc.LedgerReaderSvc[domain.Employee]
	suppliers portssvc.LedgerReaderSvc[domain.Supplier]
	orders    portssvc.OrderReaderSvc
}

// NewExportService creates the spreadsheet exporter.
func NewExportService(
	employees portssvc.LedgerReaderSvc[domain.Employee],
	suppliers portssvc.LedgerReaderSvc[domain.Supplier],
	orders portssvc.OrderReaderSvc,
) portssvc.ExportSvc {
	return &exportService{employees: employees, suppliers: suppliers, orders: orders}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) ExportEmployees(ctx context.Context, w io.Writer) error {
	accounts, err := s.employees.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return apperrors.NewValidationError([]string{"no employees to export"})
	}
	return s.write(ctx, w, SheetEmployees, employeeHeader, ledgerRows(accounts))
}

func (s *exportService) ExportSuppliers(ctx context.Context, w io.Writer) error {
	accounts, err := s.suppliers.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return apperrors.NewValidationError([]string{"no suppliers to export"})
	}
	return s.write(ctx, w, SheetSuppliers, supplierHeader, ledgerRows(accounts))
}

func (s *exportService) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return apperrors.NewValidationError([]string{"no invoices to export"})
	}
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.ID,
			o.CashierName,
			len(o.Items),
			mapping.DescribeItems(o.Items),
			utils.FormatMoney(o.Discount),
			utils.FormatMoney(o.Fee),
			utils.FormatMoney(accounting.OrderTotal(o)),
			o.PaymentTitle,
			string(o.Status),
			o.CreatedAt.Local().Format(exportTimeFormat),
		})
	}
	return s.write(ctx, w, SheetOrders, orderHeader, rows)
}

// ledgerRows emits one row per transaction with the balance left after it.
// An account without transactions still gets one row showing nothing paid.
func ledgerRows[A domain.LedgerAccount[A]](accounts []A) [][]any {
	var rows [][]any
	for _, acc := range accounts {
		principal := utils.FormatMoney(acc.Principal())
		statement := domain.Statement(acc)
		if len(statement) == 0 {
			rows = append(rows, []any{acc.AccountName(), principal, utils.FormatMoney(decimal.Zero), principal, "", ""})
			continue
		}
		for _, row := range statement {
			rows = append(rows, []any{
				acc.AccountName(),
				principal,
				utils.FormatMoney(row.Transaction.Amount),
				utils.FormatMoney(row.Remaining),
				row.Transaction.Timestamp.Local().Format(exportTimeFormat),
				row.Transaction.Note,
			})
		}
	}
	return rows
}

func (s *exportService) write(ctx context.Context, w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("resolving cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		s.LogError(ctx, err, "Failed to write workbook", slog.String("sheet", sheet))
		return fmt.Errorf("writing workbook: %w", err)
	}
	s.LogInfo(ctx, "Workbook exported", slog.String("sheet", sheet), slog.Int("rows", len(rows)))
	return nil
}
