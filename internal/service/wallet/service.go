package wallet

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/validator"
)

const defaultTransactionLimit = 20

type WalletServiceImpl struct {
	walletRepo wallet.WalletRepository
}

func NewWalletService(walletRepo wallet.WalletRepository) wallet.WalletService {
	return &WalletServiceImpl{walletRepo: walletRepo}
}

// Helper to get user_id from JWT context
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || validator.IsEmpty(userID) {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func (s *WalletServiceImpl) GetMyWallet(ctx context.Context) (wallet.WalletResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return wallet.WalletResponse{}, err
	}

	w, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return wallet.WalletResponse{}, err
	}

	txns, err := s.walletRepo.ListTransactions(ctx, userID, defaultTransactionLimit)
	if err != nil {
		return wallet.WalletResponse{}, err
	}

	resp := wallet.ToWalletResponse(w)
	resp.Transactions = wallet.ToTransactionResponses(txns)
	return resp, nil
}

func (s *WalletServiceImpl) ListMyTransactions(ctx context.Context, limit int) ([]wallet.TransactionResponse, error) {
	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	txns, err := s.walletRepo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return wallet.ToTransactionResponses(txns), nil
}
