package wallet

import (
	"time"

	"github.com/shopspring/decimal"
)

type WalletResponse struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Balance        decimal.Decimal       `json:"balance"`
	TotalEarned    decimal.Decimal       `json:"total_earned"`
	TotalWithdrawn decimal.Decimal       `json:"total_withdrawn"`
	Currency       string                `json:"currency"`
	Transactions   []TransactionResponse `json:"transactions,omitempty"`
}

type TransactionResponse struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"wallet_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	ReferenceID string          `json:"reference_id"`
	Duplicate   bool            `json:"duplicate,omitempty"`
	CreatedAt   string          `json:"created_at"`
}

func ToWalletResponse(w Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID,
		UserID:         w.UserID,
		Balance:        w.Balance,
		TotalEarned:    w.TotalEarned,
		TotalWithdrawn: w.TotalWithdrawn,
		Currency:       w.Currency,
	}
}

func ToTransactionResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		ReferenceID: t.ReferenceID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransactionResponses(txns []Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		result = append(result, ToTransactionResponse(t))
	}
	return result
}
