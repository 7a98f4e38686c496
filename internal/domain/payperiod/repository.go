package payperiod

import (
	"context"
	"time"
)

// PayPeriodRepository defines data access methods for pay periods.
// All methods include companyID to prevent cross-company data access.
type PayPeriodRepository interface {
	// Ensure inserts the (companyID, start, end) period in 'open' state or
	// returns the existing row. Safe under concurrent first-creation: the
	// unique constraint race is recovered by fetch-on-conflict, never
	// surfaced to the caller.
	Ensure(ctx context.Context, companyID string, start, end time.Time) (PayPeriod, error)

	GetByID(ctx context.Context, id string, companyID string) (PayPeriod, error)

	// Lock transitions open -> locked. Returns ErrInvalidStateTransition if
	// the period is already locked or settled.
	Lock(ctx context.Context, id string, companyID string) (PayPeriod, error)

	// ListByYear returns the company's periods starting in the given year,
	// newest first, each with its invoice counts by state.
	ListByYear(ctx context.Context, companyID string, year int) ([]PayPeriodWithCounts, error)

	// SettleIfFullyPaid promotes the period to 'settled' when no non-paid
	// invoice remains. No-op otherwise.
	SettleIfFullyPaid(ctx context.Context, id string) error

	// ListCompanyIDs returns every company id known to the system. Used by
	// the scheduled ensure-current-period job.
	ListCompanyIDs(ctx context.Context) ([]string, error)
}
