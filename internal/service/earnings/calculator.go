package earnings

import (
	"github.com/shopspring/decimal"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/salary"
)

// DefaultOvertimeRate applies when neither the salary config nor the
// company supplies an overtime multiplier.
var DefaultOvertimeRate = decimal.NewFromFloat(1.5)

var secondsPerHour = decimal.NewFromInt(3600)

// Input is everything the calculator is allowed to look at. Deductions
// arrive pre-computed so penalty policy stays outside the engine.
type Input struct {
	Config              salary.Config
	Facts               []attendance.Fact
	Deductions          decimal.Decimal
	CompanyOvertimeRate decimal.Decimal
}

// Breakdown is the per-employee earnings result for one period window.
type Breakdown struct {
	Regular    decimal.Decimal
	Overtime   decimal.Decimal
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate turns salary config plus attendance facts into an earnings
// breakdown. It is deterministic: no clock, no randomness, no state, so
// regenerating an invoice from the same inputs is auditable bit-for-bit.
//
// Monthly salaries are converted to a virtual hourly rate as
// monthlySalary / (22 x expectedHoursPerDay) and then priced exactly like
// hourly ones; paying only logged hours at the virtual rate is what
// prorates partial months (a full 8h day comes out to monthlySalary/22).
func (c *Calculator) Calculate(in Input) (Breakdown, error) {
	rate, err := c.hourlyRate(in.Config)
	if err != nil {
		return Breakdown{}, err
	}

	var workedSeconds, overtimeSeconds int64
	for _, fact := range in.Facts {
		workedSeconds += fact.WorkedSeconds
		overtimeSeconds += fact.OvertimeSeconds
	}

	regular := decimal.NewFromInt(workedSeconds).Div(secondsPerHour).Mul(rate)
	overtime := decimal.NewFromInt(overtimeSeconds).Div(secondsPerHour).Mul(rate).Mul(c.overtimeRate(in))

	gross := regular.Add(overtime)
	net := gross.Sub(in.Deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Breakdown{
		Regular:    regular,
		Overtime:   overtime,
		Gross:      gross,
		Deductions: in.Deductions,
		Net:        net,
	}, nil
}

func (c *Calculator) hourlyRate(cfg salary.Config) (decimal.Decimal, error) {
	switch cfg.SalaryType {
	case salary.TypeHourly:
		if cfg.HourlyRate.IsNegative() {
			return decimal.Zero, salary.ErrInvalidSalaryConfig
		}
		return cfg.HourlyRate, nil
	case salary.TypeMonthly:
		if cfg.MonthlySalary.IsNegative() || !cfg.ExpectedHoursPerDay.IsPositive() {
			return decimal.Zero, salary.ErrInvalidSalaryConfig
		}
		return cfg.VirtualHourlyRate(), nil
	default:
		return decimal.Zero, salary.ErrInvalidSalaryConfig
	}
}

func (c *Calculator) overtimeRate(in Input) decimal.Decimal {
	if in.Config.OverrideOvertimeRate != nil && in.Config.OverrideOvertimeRate.IsPositive() {
		return *in.Config.OverrideOvertimeRate
	}
	if in.CompanyOvertimeRate.IsPositive() {
		return in.CompanyOvertimeRate
	}
	return DefaultOvertimeRate
}
