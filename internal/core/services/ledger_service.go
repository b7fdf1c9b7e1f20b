package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger_app/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// ledgerService persists one collection of running-balance accounts under a single key.
type ledgerService[A domain.LedgerAccount[A]] struct {
	BaseService
	name       string
	store      portsrepo.KVStoreFacade
	ledger     domain.Ledger[A]
	ids        *domain.IDGenerator
	newAccount func(id int64, name string, principal decimal.Decimal) A
	metrics    *metrics.POSMetrics
	mu         sync.Mutex
}

// NewEmployeeService creates the payroll ledger stored under the employees key.
func NewEmployeeService(store portsrepo.KVStoreFacade, ids *domain.IDGenerator, m *metrics.POSMetrics) portssvc.LedgerSvcFacade[domain.Employee] {
	return &ledgerService[domain.Employee]{
		name:       portsrepo.KeyEmployees,
		store:      store,
		ledger:     domain.PayrollLedger(),
		ids:        ids,
		newAccount: domain.NewEmployee,
		metrics:    m,
	}
}

// NewSupplierService creates the supplier ledger stored under the suppliers key.
func NewSupplierService(store portsrepo.KVStoreFacade, ids *domain.IDGenerator, m *metrics.POSMetrics) portssvc.LedgerSvcFacade[domain.Supplier] {
	return &ledgerService[domain.Supplier]{
		name:       portsrepo.KeySuppliers,
		store:      store,
		ledger:     domain.SupplierLedger(),
		ids:        ids,
		newAccount: domain.NewSupplier,
		metrics:    m,
	}
}

var (
	_ portssvc.LedgerSvcFacade[domain.Employee] = (*ledgerService[domain.Employee])(nil)
	_ portssvc.LedgerSvcFacade[domain.Supplier] = (*ledgerService[domain.Supplier])(nil)
)

func (s *ledgerService[A]) load(ctx context.Context) ([]A, error) {
	accounts, err := loadCollection[A](ctx, s.store, s.name)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("ledger", s.name))
	}
	return accounts, err
}

func (s *ledgerService[A]) save(ctx context.Context, accounts []A) error {
	err := saveCollection(ctx, s.store, s.name, accounts)
	if err != nil {
		s.LogError(ctx, err, "Failed to save ledger", slog.String("ledger", s.name))
	}
	return err
}

func (s *ledgerService[A]) notFound(id int64) error {
	return fmt.Errorf("%w: %s account %d", apperrors.ErrNotFound, s.name, id)
}

func (s *ledgerService[A]) ListAccounts(ctx context.Context) ([]A, error) {
	return s.load(ctx)
}

func (s *ledgerService[A]) SearchAccounts(ctx context.Context, query string) ([]A, error) {
	accounts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]A, 0, len(accounts))
	for _, acc := range accounts {
		if domain.MatchesName(acc, query) {
			matched = append(matched, acc)
		}
	}
	return matched, nil
}

func (s *ledgerService[A]) GetAccount(ctx context.Context, id int64) (A, error) {
	var zero A
	accounts, err := s.load(ctx)
	if err != nil {
		return zero, err
	}
	acc, _, ok := s.ledger.FindAccount(accounts, id)
	if !ok {
		return zero, s.notFound(id)
	}
	return acc, nil
}

func (s *ledgerService[A]) Statement(ctx context.Context, id int64) ([]domain.StatementRow, error) {
	acc, err := s.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Statement(acc), nil
}

func (s *ledgerService[A]) CreateAccount(ctx context.Context, name string, principal decimal.Decimal) (A, error) {
	var zero A
	name = strings.TrimSpace(name)
	var msgs []string
	if name == "" {
		msgs = append(msgs, "name is required")
	}
	if !principal.IsPositive() {
		msgs = append(msgs, "amount must be greater than zero")
	}
	if err := apperrors.NewValidationError(msgs); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, acc := range accounts {
		s.ids.Observe(acc.AccountID())
	}
	acc := s.newAccount(s.ids.Next(), name, principal)
	if err := s.save(ctx, append(accounts, acc)); err != nil {
		return zero, err
	}
	s.LogInfo(ctx, "Ledger account created", slog.String("ledger", s.name), slog.Int64("account_id", acc.AccountID()))
	return acc, nil
}

func (s *ledgerService[A]) DeleteAccount(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := s.ledger.RemoveAccount(accounts, id)
	if len(kept) == len(accounts) {
		return nil
	}
	if err := s.save(ctx, kept); err != nil {
		return err
	}
	s.LogInfo(ctx, "Ledger account deleted", slog.String("ledger", s.name), slog.Int64("account_id", id))
	return nil
}

func (s *ledgerService[A]) AddTransaction(ctx context.Context, id int64, amount decimal.Decimal, note string) (A, error) {
	var zero A
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return zero, err
	}
	acc, idx, ok := s.ledger.FindAccount(accounts, id)
	if !ok {
		return zero, s.notFound(id)
	}
	updated, err := s.ledger.AddTransaction(acc, amount, note)
	if err != nil {
		return zero, err
	}
	if err := s.save(ctx, s.ledger.Replace(accounts, idx, updated)); err != nil {
		return zero, err
	}
	s.metrics.LedgerTransaction(s.name)
	s.LogInfo(ctx, "Ledger transaction recorded",
		slog.String("ledger", s.name),
		slog.Int64("account_id", id),
		slog.String("amount", amount.String()))
	return updated, nil
}

func (s *ledgerService[A]) EndPeriod(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := s.save(ctx, s.ledger.ResetPeriod(accounts)); err != nil {
		return err
	}
	s.LogInfo(ctx, "Ledger period closed", slog.String("ledger", s.name), slog.Int("accounts", len(accounts)))
	return nil
}
