package salary

import (
	"github.com/shopspring/decimal"
)

// SalaryType enum
type SalaryType string

const (
	TypeHourly  SalaryType = "hourly"
	TypeMonthly SalaryType = "monthly"
)

// StandardWorkingDays is the company-standard working-day count used to
// derive a virtual hourly rate from a monthly salary.
const StandardWorkingDays = 22

// Config - per-employee salary configuration. Owned by the HR editing
// flow; strictly read-only inside the settlement engine. Exactly one of
// HourlyRate/MonthlySalary is authoritative depending on SalaryType.
type Config struct {
	UserID               string
	SalaryType           SalaryType
	HourlyRate           decimal.Decimal
	MonthlySalary        decimal.Decimal
	ExpectedHoursPerDay  decimal.Decimal
	MinDailyHours        decimal.Decimal
	OverrideOvertimeRate *decimal.Decimal
	Currency             string
}

// VirtualHourlyRate converts a monthly salary to its hourly equivalent:
// monthlySalary / (22 x expectedHoursPerDay). For hourly configs the
// configured rate is returned as-is.
func (c Config) VirtualHourlyRate() decimal.Decimal {
	if c.SalaryType == TypeHourly {
		return c.HourlyRate
	}
	divisor := decimal.NewFromInt(StandardWorkingDays).Mul(c.ExpectedHoursPerDay)
	if divisor.IsZero() {
		return decimal.Zero
	}
	return c.MonthlySalary.Div(divisor)
}
