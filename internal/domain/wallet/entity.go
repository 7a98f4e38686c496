package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enum
type TransactionType string

const (
	TypeCreditInvoice   TransactionType = "credit_invoice"
	TypeDebitWithdrawal TransactionType = "debit_withdrawal"
	TypeAdjustment      TransactionType = "adjustment"
)

// Wallet - per-user running balance fed exclusively by invoice payments.
// Created lazily with zero balances on first access.
type Wallet struct {
	ID             string
	UserID         string
	Balance        decimal.Decimal
	TotalEarned    decimal.Decimal
	TotalWithdrawn decimal.Decimal
	Currency       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Transaction - append-only ledger row. For credit_invoice rows the
// reference id is unique across the ledger, which is what prevents
// double-crediting the same invoice.
type Transaction struct {
	ID          string
	WalletID    string
	Amount      decimal.Decimal
	Type        TransactionType
	ReferenceID string
	CreatedAt   time.Time
}
