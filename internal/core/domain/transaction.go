package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SignPolicy decides which transaction amounts a ledger accepts.
type SignPolicy string

const (
	// PositiveOnly is the payroll policy: every payment is strictly positive.
	PositiveOnly SignPolicy = "POSITIVE_ONLY"
	// Signed is the supplier policy: negative amounts record debits and refunds.
	Signed SignPolicy = "SIGNED"
)

// Transaction is a single immutable ledger entry.
type Transaction struct {
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"` // Sign-carrying for Signed ledgers
	Note      string          `json:"note,omitempty"`
}

// Validate checks amount against the policy.
func (p SignPolicy) Validate(amount decimal.Decimal) error {
	if amount.IsZero() {
		return fmt.Errorf("%w: amount must not be zero", apperrors.ErrInvalidAmount)
	}
	if p == PositiveOnly && amount.IsNegative() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}
