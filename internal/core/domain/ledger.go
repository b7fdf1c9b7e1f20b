package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerView is the read side of any account a ledger tracks.
type LedgerView interface {
	Principal() decimal.Decimal
	Entries() []Transaction
}

// LedgerAccount is implemented by every account kind a Ledger can hold.
// WithEntries must return a copy; the receiver is never modified.
type LedgerAccount[A any] interface {
	LedgerView
	AccountID() int64
	AccountName() string
	WithEntries(entries []Transaction) A
}

// StatementRow is one transaction together with the balance left after it.
type StatementRow struct {
	Index       int             `json:"index"`
	Transaction Transaction     `json:"transaction"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// Ledger applies the append-only rules shared by payroll and supplier accounts.
type Ledger[A LedgerAccount[A]] struct {
	Policy SignPolicy
	Now    func() time.Time
}

// NewLedger creates a ledger that stamps entries with the current UTC time.
func NewLedger[A LedgerAccount[A]](policy SignPolicy) Ledger[A] {
	return Ledger[A]{
		Policy: policy,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

// AddTransaction returns account with one more entry appended.
func (l Ledger[A]) AddTransaction(account A, amount decimal.Decimal, note string) (A, error) {
	if err := l.Policy.Validate(amount); err != nil {
		return account, err
	}
	current := account.Entries()
	entries := make([]Transaction, len(current), len(current)+1)
	copy(entries, current)
	entries = append(entries, Transaction{
		Timestamp: l.Now(),
		Amount:    amount,
		Note:      strings.TrimSpace(note),
	})
	return account.WithEntries(entries), nil
}

// ResetPeriod clears the transactions of every account. The input slice is untouched.
func (l Ledger[A]) ResetPeriod(accounts []A) []A {
	reset := make([]A, len(accounts))
	for i, acc := range accounts {
		reset[i] = acc.WithEntries([]Transaction{})
	}
	return reset
}

// RemoveAccount drops the account with id. Absent ids are a no-op.
func (l Ledger[A]) RemoveAccount(accounts []A, id int64) []A {
	kept := make([]A, 0, len(accounts))
	for _, acc := range accounts {
		if acc.AccountID() != id {
			kept = append(kept, acc)
		}
	}
	return kept
}

// FindAccount returns the account with id and its position.
func (l Ledger[A]) FindAccount(accounts []A, id int64) (A, int, bool) {
	for i, acc := range accounts {
		if acc.AccountID() == id {
			return acc, i, true
		}
	}
	var zero A
	return zero, -1, false
}

// Replace returns a copy of accounts with the entry at idx swapped for account.
func (l Ledger[A]) Replace(accounts []A, idx int, account A) []A {
	updated := make([]A, len(accounts))
	copy(updated, accounts)
	updated[idx] = account
	return updated
}

// SumOrdered adds values strictly left to right.
func SumOrdered(values []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum
}

// PrefixSums returns the running totals of values in insertion order.
func PrefixSums(values []decimal.Decimal) []decimal.Decimal {
	sums := make([]decimal.Decimal, len(values))
	running := decimal.Zero
	for i, v := range values {
		running = running.Add(v)
		sums[i] = running
	}
	return sums
}

func amounts(entries []Transaction) []decimal.Decimal {
	out := make([]decimal.Decimal, len(entries))
	for i, e := range entries {
		out[i] = e.Amount
	}
	return out
}

// TotalPaid is the sum of every transaction on the account.
func TotalPaid(account LedgerView) decimal.Decimal {
	return SumOrdered(amounts(account.Entries()))
}

// Remaining is principal minus everything paid so far.
func Remaining(account LedgerView) decimal.Decimal {
	return account.Principal().Sub(TotalPaid(account))
}

// RunningRemaining is principal minus the transactions up to and including uptoIndex.
// A negative index yields the principal; an index past the end covers every entry.
func RunningRemaining(account LedgerView, uptoIndex int) decimal.Decimal {
	entries := account.Entries()
	if uptoIndex < 0 {
		return account.Principal()
	}
	if uptoIndex >= len(entries) {
		uptoIndex = len(entries) - 1
	}
	return account.Principal().Sub(SumOrdered(amounts(entries[:uptoIndex+1])))
}

// Statement lists every transaction with the remaining balance after it.
func Statement(account LedgerView) []StatementRow {
	entries := account.Entries()
	sums := PrefixSums(amounts(entries))
	rows := make([]StatementRow, len(entries))
	for i, e := range entries {
		rows[i] = StatementRow{
			Index:       i,
			Transaction: e,
			Remaining:   account.Principal().Sub(sums[i]),
		}
	}
	return rows
}

// MatchesName reports whether the account name contains query, ignoring case.
func MatchesName[A LedgerAccount[A]](account A, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(account.AccountName()), q)
}
