package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusPaid     Status = "paid"
)

// CanTransitionTo reports whether the draft -> approved -> paid machine
// allows moving from s to next. No state is skipped, nothing moves back.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusApproved
	case StatusApproved:
		return next == StatusPaid
	default:
		return false
	}
}

// Invoice - the settlement record of one employee's earnings for one pay
// period. Exactly one row per (pay_period_id, user_id). Amounts are fixed
// at generation time; paid invoices are immutable.
type Invoice struct {
	ID             string
	PayPeriodID    string
	CompanyID      string
	UserID         string
	GrossAmount    decimal.Decimal
	RegularAmount  decimal.Decimal
	OvertimeAmount decimal.Decimal
	Deductions     decimal.Decimal
	NetAmount      decimal.Decimal
	Currency       string
	Status         Status
	PaidAt         *time.Time
	PaidBy         *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	PeriodStart  *time.Time
	PeriodEnd    *time.Time
}
