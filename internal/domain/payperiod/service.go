package payperiod

import "context"

// PayPeriodService owns the lifecycle of a company's billing windows.
// Invoice generation lives in the invoice service; this one only manages
// the window rows themselves.
type PayPeriodService interface {
	// EnsurePayPeriod creates (or returns) the company's period for the
	// given calendar month. Idempotent and concurrency-safe.
	EnsurePayPeriod(ctx context.Context, year, month int) (PayPeriodResponse, error)

	// LockPayPeriod transitions open -> locked. Locking blocks future
	// invoice generation for the period; approval and payment of already
	// generated invoices stay available.
	LockPayPeriod(ctx context.Context, periodID string) (PayPeriodResponse, error)

	ListPayPeriods(ctx context.Context, year int) ([]PayPeriodListItem, error)
}
