package wallet

import "context"

// WalletService exposes the caller-facing read side of the ledger. All
// money movement goes through the repository's Credit, driven by invoice
// settlement; there is no direct credit endpoint.
type WalletService interface {
	// GetMyWallet returns the caller's wallet with its most recent
	// transactions, creating the wallet on first access.
	GetMyWallet(ctx context.Context) (WalletResponse, error)

	ListMyTransactions(ctx context.Context, limit int) ([]TransactionResponse, error)
}
