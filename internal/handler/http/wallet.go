package http

import (
	"net/http"
	"strconv"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http/response"
)

type WalletHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	ListMyTransactions(w http.ResponseWriter, r *http.Request)
}

type WalletHandlerImpl struct {
	walletService wallet.WalletService
}

func NewWalletHandler(walletService wallet.WalletService) WalletHandler {
	return &WalletHandlerImpl{walletService: walletService}
}

func (h *WalletHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.walletService.GetMyWallet(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

func (h *WalletHandlerImpl) ListMyTransactions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "Invalid limit parameter", nil)
			return
		}
		limit = parsed
	}

	txns, err := h.walletService.ListMyTransactions(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, txns)
}
