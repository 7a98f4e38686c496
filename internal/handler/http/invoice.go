package http

import (
	"fmt"
	"net/http"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	Approve(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

func (h *InvoiceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := uuidParam(w, r, "invoiceID")
	if !ok {
		return
	}

	inv, err := h.invoiceService.ApproveInvoice(r.Context(), invoiceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice approved", inv)
}

func (h *InvoiceHandlerImpl) Pay(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := uuidParam(w, r, "invoiceID")
	if !ok {
		return
	}

	payment, err := h.invoiceService.PayInvoice(r.Context(), invoiceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice paid", payment)
}

func (h *InvoiceHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.ListMyInvoices(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoices)
}

func (h *InvoiceHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := uuidParam(w, r, "invoiceID")
	if !ok {
		return
	}

	data, err := h.invoiceService.RenderPayslipPDF(r.Context(), invoiceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, invoiceID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
