package invoice

import "context"

// InvoiceService covers generation, approval and settlement.
type InvoiceService interface {
	// GenerateInvoices computes earnings for every active employee in the
	// period's window and upserts one draft invoice per employee. Fails
	// with payperiod.ErrPeriodNotOpen on locked/settled periods. Safe to
	// re-run: draft rows are overwritten, approved/paid rows untouched.
	GenerateInvoices(ctx context.Context, periodID string) (GenerationResult, error)

	// ApproveInvoice moves draft -> approved.
	ApproveInvoice(ctx context.Context, invoiceID string) (InvoiceResponse, error)

	// PayInvoice moves approved -> paid and credits the employee's wallet
	// exactly once, both inside a single transaction. Concurrent calls on
	// the same invoice result in one success and one
	// ErrInvalidStateTransition.
	PayInvoice(ctx context.Context, invoiceID string) (PaymentResponse, error)

	// PayAllInvoices settles every approved invoice in the period one by
	// one, reporting per-invoice outcomes. Already-committed payments
	// survive later failures and caller cancellation.
	PayAllInvoices(ctx context.Context, periodID string) ([]PayAllResult, error)

	ListInvoices(ctx context.Context, periodID string) ([]InvoiceResponse, error)
	ListMyInvoices(ctx context.Context) ([]InvoiceResponse, error)

	// RenderPayslipPDF renders the invoice as a payslip PDF for download.
	RenderPayslipPDF(ctx context.Context, invoiceID string) ([]byte, error)
}
