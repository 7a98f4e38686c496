package payperiod

import (
	"time"
)

// Status enum
type Status string

const (
	StatusOpen    Status = "open"
	StatusLocked  Status = "locked"
	StatusSettled Status = "settled"
)

// PayPeriod - Company-scoped billing window, non-overlapping per company.
// Status only moves forward: open -> locked -> settled.
type PayPeriod struct {
	ID        string
	CompanyID string
	StartDate time.Time
	EndDate   time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceCounts - per-state invoice tally for one period
type InvoiceCounts struct {
	Draft    int
	Approved int
	Paid     int
}

// PayPeriodWithCounts - list row: period plus its invoice tally
type PayPeriodWithCounts struct {
	PayPeriod
	Counts InvoiceCounts
}

// MonthBounds returns the canonical [first day, last day] window for a
// calendar month. Dates are UTC midnights; the end date is inclusive.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
