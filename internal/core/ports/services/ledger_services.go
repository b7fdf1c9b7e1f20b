package services

import (
	"context"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for a ledger of accounts
type LedgerReaderSvc[A any] interface {
	ListAccounts(ctx context.Context) ([]A, error)
	SearchAccounts(ctx context.Context, query string) ([]A, error)
	GetAccount(ctx context.Context, id int64) (A, error)
	Statement(ctx context.Context, id int64) ([]domain.StatementRow, error)
}

// LedgerWriterSvc defines write operations for a ledger of accounts
type LedgerWriterSvc[A any] interface {
	CreateAccount(ctx context.Context, name string, principal decimal.Decimal) (A, error)

	// DeleteAccount is idempotent.
	DeleteAccount(ctx context.Context, id int64) error

	AddTransaction(ctx context.Context, id int64, amount decimal.Decimal, note string) (A, error)

	// EndPeriod clears the transactions of every account in one write.
	EndPeriod(ctx context.Context) error
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade[A any] interface {
	LedgerReaderSvc[A]
	LedgerWriterSvc[A]
}
