package response

import (
	"errors"
	"net/http"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/salary"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/user"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Pay period domain errors
	case errors.Is(err, payperiod.ErrPayPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payperiod.ErrPeriodNotOpen):
		Conflict(w, "Pay period is not open")
	case errors.Is(err, payperiod.ErrInvalidStateTransition):
		Conflict(w, "Invalid pay period state transition")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvalidStateTransition):
		Conflict(w, "Invalid invoice state transition")
	case errors.Is(err, invoice.ErrInvoiceImmutable):
		Conflict(w, "Paid invoices are immutable")

	// Wallet domain errors
	case errors.Is(err, wallet.ErrInvalidCreditAmount):
		BadRequest(w, "Invalid credit amount", nil)

	// Collaborator domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, salary.ErrSalaryConfigNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, salary.ErrInvalidSalaryConfig):
		BadRequest(w, "Invalid salary configuration", nil)

	// Access errors
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
