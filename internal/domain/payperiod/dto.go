package payperiod

import (
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/validator"
)

type CreatePayPeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *CreatePayPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayPeriodResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type PayPeriodListItem struct {
	PayPeriodResponse
	DraftCount    int `json:"draft_count"`
	ApprovedCount int `json:"approved_count"`
	PaidCount     int `json:"paid_count"`
}

type CreatePayPeriodResponse struct {
	Period       PayPeriodResponse `json:"period"`
	InvoiceCount int               `json:"invoice_count"`
}
