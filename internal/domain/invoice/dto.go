package invoice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
)

type InvoiceResponse struct {
	ID             string          `json:"id"`
	PayPeriodID    string          `json:"pay_period_id"`
	UserID         string          `json:"user_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	EmployeeCode   string          `json:"employee_code,omitempty"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	RegularAmount  decimal.Decimal `json:"regular_amount"`
	OvertimeAmount decimal.Decimal `json:"overtime_amount"`
	Deductions     decimal.Decimal `json:"deductions"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	PeriodStart    *string         `json:"period_start,omitempty"`
	PeriodEnd      *string         `json:"period_end,omitempty"`
	PaidAt         *string         `json:"paid_at,omitempty"`
	CreatedAt      string          `json:"created_at"`
}

// GenerationResult reports what happened per employee during a generation
// run. Skipped employees (no salary config) are listed, not fatal.
type GenerationResult struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Skipped  []SkippedEmployee `json:"skipped,omitempty"`
}

type SkippedEmployee struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// PaymentResponse is the result of a single settlement: the paid invoice
// and the ledger transaction that credited it.
type PaymentResponse struct {
	Invoice     InvoiceResponse            `json:"invoice"`
	Transaction wallet.TransactionResponse `json:"transaction"`
}

// PayAllResult is one entry of the pay-all outcome list. Settlements are
// independent; a failed entry never rolls back the succeeded ones.
type PayAllResult struct {
	InvoiceID string `json:"invoice_id"`
	UserID    string `json:"user_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

func ToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:             inv.ID,
		PayPeriodID:    inv.PayPeriodID,
		UserID:         inv.UserID,
		GrossAmount:    inv.GrossAmount,
		RegularAmount:  inv.RegularAmount,
		OvertimeAmount: inv.OvertimeAmount,
		Deductions:     inv.Deductions,
		NetAmount:      inv.NetAmount,
		Currency:       inv.Currency,
		Status:         string(inv.Status),
		CreatedAt:      inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.EmployeeName != nil {
		resp.EmployeeName = *inv.EmployeeName
	}
	if inv.EmployeeCode != nil {
		resp.EmployeeCode = *inv.EmployeeCode
	}
	if inv.PeriodStart != nil {
		s := inv.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &s
	}
	if inv.PeriodEnd != nil {
		s := inv.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &s
	}
	if inv.PaidAt != nil {
		s := inv.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &s
	}
	return resp
}

func ToResponses(invoices []Invoice) []InvoiceResponse {
	result := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, ToResponse(inv))
	}
	return result
}
