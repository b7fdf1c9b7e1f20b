package domain

import "github.com/shopspring/decimal"

// Supplier is an account payable. Balance is the opening amount owed to the supplier.
type Supplier struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}

func (s Supplier) AccountID() int64           { return s.ID }
func (s Supplier) AccountName() string        { return s.Name }
func (s Supplier) Principal() decimal.Decimal { return s.Balance }
func (s Supplier) Entries() []Transaction     { return s.Transactions }

// WithEntries returns a copy of the supplier holding entries.
func (s Supplier) WithEntries(entries []Transaction) Supplier {
	s.Transactions = entries
	return s
}

// NewSupplier builds a supplier with an empty transaction list.
func NewSupplier(id int64, name string, balance decimal.Decimal) Supplier {
	return Supplier{ID: id, Name: name, Balance: balance, Transactions: []Transaction{}}
}

// SupplierLedger accepts signed amounts; negatives record refunds or debits.
func SupplierLedger() Ledger[Supplier] {
	return NewLedger[Supplier](Signed)
}

var _ LedgerAccount[Supplier] = Supplier{}
