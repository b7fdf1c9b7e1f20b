package domain

import "github.com/shopspring/decimal"

// Employee is a payroll account. Salary is the principal owed for the period.
type Employee struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Salary       decimal.Decimal `json:"salary"`
	Transactions []Transaction   `json:"transactions"`
}

func (e Employee) AccountID() int64           { return e.ID }
func (e Employee) AccountName() string        { return e.Name }
func (e Employee) Principal() decimal.Decimal { return e.Salary }
func (e Employee) Entries() []Transaction     { return e.Transactions }

// WithEntries returns a copy of the employee holding entries.
func (e Employee) WithEntries(entries []Transaction) Employee {
	e.Transactions = entries
	return e
}

// NewEmployee builds an employee with an empty transaction list.
func NewEmployee(id int64, name string, salary decimal.Decimal) Employee {
	return Employee{ID: id, Name: name, Salary: salary, Transactions: []Transaction{}}
}

// PayrollLedger only accepts positive payments.
func PayrollLedger() Ledger[Employee] {
	return NewLedger[Employee](PositiveOnly)
}

var _ LedgerAccount[Employee] = Employee{}
