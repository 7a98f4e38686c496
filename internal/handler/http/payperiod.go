package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http/response"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/validator"
)

// uuidParam pulls a UUID path parameter, rejecting malformed values
// before they reach the database.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid "+name, nil)
		return "", false
	}
	return id, true
}

type PayPeriodHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	GenerateInvoices(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	PayAll(w http.ResponseWriter, r *http.Request)
}

type PayPeriodHandlerImpl struct {
	payPeriodService payperiod.PayPeriodService
	invoiceService   invoice.InvoiceService
}

func NewPayPeriodHandler(payPeriodService payperiod.PayPeriodService, invoiceService invoice.InvoiceService) PayPeriodHandler {
	return &PayPeriodHandlerImpl{
		payPeriodService: payPeriodService,
		invoiceService:   invoiceService,
	}
}

// Create ensures the month's period exists and runs invoice generation
// for it. Re-posting the same month is safe: the existing period is
// reused and draft invoices are recomputed.
func (h *PayPeriodHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payperiod.CreatePayPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	period, err := h.payPeriodService.EnsurePayPeriod(r.Context(), req.Year, req.Month)
	if err != nil {
		slog.Error("Failed to ensure pay period", "error", err)
		response.HandleError(w, err)
		return
	}

	resp := payperiod.CreatePayPeriodResponse{Period: period}
	if period.Status == string(payperiod.StatusOpen) {
		result, err := h.invoiceService.GenerateInvoices(r.Context(), period.ID)
		if err != nil && !errors.Is(err, payperiod.ErrPeriodNotOpen) {
			slog.Error("Failed to generate invoices", "period_id", period.ID, "error", err)
			response.HandleError(w, err)
			return
		}
		resp.InvoiceCount = len(result.Invoices)
	} else {
		existing, err := h.invoiceService.ListInvoices(r.Context(), period.ID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		resp.InvoiceCount = len(existing)
	}

	response.Created(w, "Pay period ready", resp)
}

func (h *PayPeriodHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	periods, err := h.payPeriodService.ListPayPeriods(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, periods)
}

func (h *PayPeriodHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	periodID, ok := uuidParam(w, r, "periodID")
	if !ok {
		return
	}

	period, err := h.payPeriodService.LockPayPeriod(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay period locked", period)
}

func (h *PayPeriodHandlerImpl) GenerateInvoices(w http.ResponseWriter, r *http.Request) {
	periodID, ok := uuidParam(w, r, "periodID")
	if !ok {
		return
	}

	result, err := h.invoiceService.GenerateInvoices(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoices generated", result)
}

func (h *PayPeriodHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	periodID, ok := uuidParam(w, r, "periodID")
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoices(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoices)
}

func (h *PayPeriodHandlerImpl) PayAll(w http.ResponseWriter, r *http.Request) {
	periodID, ok := uuidParam(w, r, "periodID")
	if !ok {
		return
	}

	results, err := h.invoiceService.PayAllInvoices(r.Context(), periodID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk payment completed", results)
}
