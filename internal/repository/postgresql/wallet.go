package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type walletRepository struct {
	db *database.DB
}

func NewWalletRepository(db *database.DB) wallet.WalletRepository {
	return &walletRepository{db: db}
}

const walletColumns = `id, user_id, balance, total_earned, total_withdrawn, currency, created_at, updated_at`

func scanWallet(row pgx.Row) (wallet.Wallet, error) {
	var w wallet.Wallet
	err := row.Scan(&w.ID, &w.UserID, &w.Balance, &w.TotalEarned, &w.TotalWithdrawn, &w.Currency, &w.CreatedAt, &w.UpdatedAt)
	return w, err
}

const transactionColumns = `id, wallet_id, amount, type, reference_id, created_at`

func scanTransaction(row pgx.Row) (wallet.Transaction, error) {
	var t wallet.Transaction
	err := row.Scan(&t.ID, &t.WalletID, &t.Amount, &t.Type, &t.ReferenceID, &t.CreatedAt)
	return t, err
}

func (r *walletRepository) GetOrCreate(ctx context.Context, userID string) (wallet.Wallet, error) {
	q := GetQuerier(ctx, r.db)

	insert := `
		INSERT INTO wallets (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING ` + walletColumns

	w, err := scanWallet(q.QueryRow(ctx, insert, userID))
	if err == nil {
		return w, nil
	}
	if err != pgx.ErrNoRows {
		return wallet.Wallet{}, fmt.Errorf("failed to create wallet: %w", err)
	}

	w, err = scanWallet(q.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID))
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}

	return w, nil
}

func (r *walletRepository) Credit(ctx context.Context, userID string, amount decimal.Decimal, referenceID string) (wallet.Transaction, bool, error) {
	if amount.IsNegative() {
		return wallet.Transaction{}, false, wallet.ErrInvalidCreditAmount
	}

	// The ledger append and the balance increment must commit together.
	// Join the caller's transaction when one is on the context, otherwise
	// open one here so a direct pool call stays atomic too.
	if _, ok := ctx.Value("tx").(pgx.Tx); ok {
		return r.credit(ctx, userID, amount, referenceID)
	}

	var txn wallet.Transaction
	var duplicate bool
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var err error
		txn, duplicate, err = r.credit(txCtx, userID, amount, referenceID)
		return err
	})
	if err != nil {
		return wallet.Transaction{}, false, err
	}
	return txn, duplicate, nil
}

func (r *walletRepository) credit(ctx context.Context, userID string, amount decimal.Decimal, referenceID string) (wallet.Transaction, bool, error) {
	q := GetQuerier(ctx, r.db)

	w, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return wallet.Transaction{}, false, err
	}

	// Serialize concurrent credits on the same wallet.
	if _, err := q.Exec(ctx, `SELECT id FROM wallets WHERE id = $1 FOR UPDATE`, w.ID); err != nil {
		return wallet.Transaction{}, false, fmt.Errorf("failed to lock wallet: %w", err)
	}

	// The partial unique index on (type, reference_id) is the dedupe
	// guard: two racing payments both reach this insert, only one row
	// lands. The loser gets no row back and returns the winner's
	// transaction without touching the balance.
	insert := `
		INSERT INTO wallet_transactions (wallet_id, amount, type, reference_id)
		VALUES ($1, $2, 'credit_invoice', $3)
		ON CONFLICT (type, reference_id) WHERE type = 'credit_invoice' DO NOTHING
		RETURNING ` + transactionColumns

	txn, err := scanTransaction(q.QueryRow(ctx, insert, w.ID, amount, referenceID))
	if err == pgx.ErrNoRows {
		existing, err := scanTransaction(q.QueryRow(ctx, `
			SELECT `+transactionColumns+`
			FROM wallet_transactions
			WHERE type = 'credit_invoice' AND reference_id = $1
		`, referenceID))
		if err != nil {
			return wallet.Transaction{}, false, fmt.Errorf("failed to fetch existing credit: %w", err)
		}
		return existing, true, nil
	}
	if err != nil {
		return wallet.Transaction{}, false, fmt.Errorf("failed to append wallet transaction: %w", err)
	}

	update := `
		UPDATE wallets
		SET balance = balance + $2, total_earned = total_earned + $2, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := q.Exec(ctx, update, w.ID, amount); err != nil {
		return wallet.Transaction{}, false, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	return txn, false, nil
}

func (r *walletRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]wallet.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT t.id, t.wallet_id, t.amount, t.type, COALESCE(t.reference_id::text, ''), t.created_at
		FROM wallet_transactions t
		JOIN wallets w ON w.id = t.wallet_id
		WHERE w.user_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	defer rows.Close()

	var txns []wallet.Transaction
	for rows.Next() {
		var t wallet.Transaction
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Amount, &t.Type, &t.ReferenceID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction: %w", err)
		}
		txns = append(txns, t)
	}

	return txns, nil
}
