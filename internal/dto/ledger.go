package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger_app/internal/core/domain"
	"github.com/SscSPs/pos_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest creates an employee (amount = salary) or supplier (amount = balance).
type CreateAccountRequest struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type AddTransactionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

type TransactionResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note,omitempty"`
}

// AccountResponse is a ledger account with its derived balances.
type AccountResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Principal    string                `json:"principal"`
	TotalPaid    string                `json:"total_paid"`
	Remaining    string                `json:"remaining"`
	Transactions []TransactionResponse `json:"transactions"`
}

func ToAccountResponse[A domain.LedgerAccount[A]](acc A) AccountResponse {
	entries := acc.Entries()
	txns := make([]TransactionResponse, len(entries))
	for i, e := range entries {
		txns[i] = TransactionResponse{Timestamp: e.Timestamp, Amount: utils.FormatMoney(e.Amount), Note: e.Note}
	}
	return AccountResponse{
		ID:           acc.AccountID(),
		Name:         acc.AccountName(),
		Principal:    utils.FormatMoney(acc.Principal()),
		TotalPaid:    utils.FormatMoney(domain.TotalPaid(acc)),
		Remaining:    utils.FormatMoney(domain.Remaining(acc)),
		Transactions: txns,
	}
}

func ToAccountResponses[A domain.LedgerAccount[A]](accounts []A) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		out[i] = ToAccountResponse(acc)
	}
	return out
}

type StatementRowResponse struct {
	Index     int       `json:"index"`
	Timestamp time.Time `json:"timestamp"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note,omitempty"`
	Remaining string    `json:"remaining"`
}

func ToStatementResponse(rows []domain.StatementRow) []StatementRowResponse {
	out := make([]StatementRowResponse, len(rows))
	for i, r := range rows {
		out[i] = StatementRowResponse{
			Index:     r.Index,
			Timestamp: r.Transaction.Timestamp,
			Amount:    utils.FormatMoney(r.Transaction.Amount),
			Note:      r.Transaction.Note,
			Remaining: utils.FormatMoney(r.Remaining),
		}
	}
	return out
}
