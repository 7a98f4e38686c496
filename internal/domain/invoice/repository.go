package invoice

import "context"

// InvoiceRepository defines data access methods for invoices.
// All company-scoped methods take companyID to prevent cross-company access.
type InvoiceRepository interface {
	// UpsertDraft inserts the invoice or, when a row already exists for
	// (pay_period_id, user_id) and is still draft, overwrites its amounts
	// with the freshly computed figures. Approved and paid rows are left
	// untouched; the existing row is returned in that case.
	UpsertDraft(ctx context.Context, inv Invoice) (Invoice, error)

	GetByID(ctx context.Context, id string, companyID string) (Invoice, error)

	// GetByIDForUpdate locks the invoice row for the duration of the
	// surrounding transaction. Must run inside WithTransaction.
	GetByIDForUpdate(ctx context.Context, id string, companyID string) (Invoice, error)

	GetByPeriodUser(ctx context.Context, periodID, userID string) (Invoice, error)

	// ListByPeriod returns the period's invoices enriched with employee
	// identity, ordered by employee name.
	ListByPeriod(ctx context.Context, periodID string, companyID string) ([]Invoice, error)

	// ListApprovedByPeriod returns only approved invoices, the input set
	// for pay-all settlement.
	ListApprovedByPeriod(ctx context.Context, periodID string, companyID string) ([]Invoice, error)

	// ListByUser returns the user's own invoices across periods, newest
	// period first.
	ListByUser(ctx context.Context, userID string) ([]Invoice, error)

	// Approve performs the guarded draft -> approved flip. Returns
	// ErrInvoiceImmutable for a paid row, ErrInvalidStateTransition for
	// any other non-draft state.
	Approve(ctx context.Context, id string, companyID string) (Invoice, error)

	// MarkPaid performs the guarded approved -> paid flip. Must run inside
	// the same transaction as the wallet credit.
	MarkPaid(ctx context.Context, id string, companyID string, paidBy string) (Invoice, error)
}
