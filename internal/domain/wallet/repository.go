package wallet

import (
	"context"

	"github.com/shopspring/decimal"
)

// WalletRepository defines data access for wallets and their ledger.
type WalletRepository interface {
	// GetOrCreate returns the user's wallet, creating a zero-balance one
	// on first access. Concurrency-safe via insert-if-absent.
	GetOrCreate(ctx context.Context, userID string) (Wallet, error)

	// Credit is the sole mutating entry point. Idempotent on referenceID:
	// when a credit_invoice transaction with that reference already exists
	// the existing transaction is returned with duplicate=true and the
	// balance is left alone. Otherwise the ledger append and the
	// balance/total_earned increments happen atomically: inside the
	// caller's transaction when one is on the context, otherwise inside
	// one the repository opens itself.
	Credit(ctx context.Context, userID string, amount decimal.Decimal, referenceID string) (txn Transaction, duplicate bool, err error)

	// ListTransactions returns the user's ledger rows, most recent first.
	ListTransactions(ctx context.Context, userID string, limit int) ([]Transaction, error)
}
