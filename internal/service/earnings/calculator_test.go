package earnings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/salary"
)

func day(date string, worked, overtime int64) attendance.Fact {
	d, _ := time.Parse("2006-01-02", date)
	status := attendance.StatusPresent
	if worked == 0 {
		status = attendance.StatusAbsent
	}
	return attendance.Fact{
		UserID:          "u-1",
		Date:            d,
		WorkedSeconds:   worked,
		OvertimeSeconds: overtime,
		Status:          status,
	}
}

func TestCalculate_HourlyWithOvertime(t *testing.T) {
	calc := NewCalculator()

	// 300/h, one 8h day plus 1h overtime at 1.5x
	in := Input{
		Config: salary.Config{
			UserID:     "u-1",
			SalaryType: salary.TypeHourly,
			HourlyRate: decimal.NewFromInt(300),
			Currency:   "USD",
		},
		Facts:               []attendance.Fact{day("2025-03-03", 28800, 3600)},
		Deductions:          decimal.Zero,
		CompanyOvertimeRate: decimal.NewFromFloat(1.5),
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)

	assert.True(t, out.Regular.Equal(decimal.NewFromInt(2400)), "regular = %s", out.Regular)
	assert.True(t, out.Overtime.Equal(decimal.NewFromInt(450)), "overtime = %s", out.Overtime)
	assert.True(t, out.Net.Equal(decimal.NewFromInt(2850)), "net = %s", out.Net)
	assert.True(t, out.Gross.Equal(decimal.NewFromInt(2850)))
}

func TestCalculate_MonthlyVirtualRate(t *testing.T) {
	calc := NewCalculator()

	// 66000/month at 8h/day => 66000/(22*8) = 375/h; one 8h day => 3000
	in := Input{
		Config: salary.Config{
			UserID:              "u-1",
			SalaryType:          salary.TypeMonthly,
			MonthlySalary:       decimal.NewFromInt(66000),
			ExpectedHoursPerDay: decimal.NewFromInt(8),
			Currency:            "USD",
		},
		Facts: []attendance.Fact{day("2025-03-03", 28800, 0)},
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)

	assert.True(t, out.Regular.Equal(decimal.NewFromInt(3000)), "regular = %s", out.Regular)
	assert.True(t, out.Overtime.IsZero())
	assert.True(t, out.Net.Equal(decimal.NewFromInt(3000)), "net = %s", out.Net)
}

func TestCalculate_MonthlyFullMonthEqualsSalary(t *testing.T) {
	calc := NewCalculator()

	// 22 full 8h days pay out exactly the monthly salary
	var facts []attendance.Fact
	for i := 0; i < 22; i++ {
		facts = append(facts, day("2025-03-03", 28800, 0))
	}

	in := Input{
		Config: salary.Config{
			SalaryType:          salary.TypeMonthly,
			MonthlySalary:       decimal.NewFromInt(66000),
			ExpectedHoursPerDay: decimal.NewFromInt(8),
		},
		Facts: facts,
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)
	assert.True(t, out.Net.Equal(decimal.NewFromInt(66000)), "net = %s", out.Net)
}

func TestCalculate_OvertimeOverrideBeatsCompanyDefault(t *testing.T) {
	calc := NewCalculator()

	override := decimal.NewFromInt(2)
	in := Input{
		Config: salary.Config{
			SalaryType:           salary.TypeHourly,
			HourlyRate:           decimal.NewFromInt(100),
			OverrideOvertimeRate: &override,
		},
		Facts:               []attendance.Fact{day("2025-03-03", 0, 3600)},
		CompanyOvertimeRate: decimal.NewFromFloat(1.5),
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)
	assert.True(t, out.Overtime.Equal(decimal.NewFromInt(200)), "overtime = %s", out.Overtime)
}

func TestCalculate_DefaultOvertimeRateWhenUnset(t *testing.T) {
	calc := NewCalculator()

	in := Input{
		Config: salary.Config{
			SalaryType: salary.TypeHourly,
			HourlyRate: decimal.NewFromInt(100),
		},
		Facts: []attendance.Fact{day("2025-03-03", 0, 3600)},
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)
	assert.True(t, out.Overtime.Equal(decimal.NewFromInt(150)), "overtime = %s", out.Overtime)
}

func TestCalculate_DeductionsFloorAtZero(t *testing.T) {
	calc := NewCalculator()

	in := Input{
		Config: salary.Config{
			SalaryType: salary.TypeHourly,
			HourlyRate: decimal.NewFromInt(100),
		},
		Facts:      []attendance.Fact{day("2025-03-03", 3600, 0)},
		Deductions: decimal.NewFromInt(500),
	}

	out, err := calc.Calculate(in)
	require.NoError(t, err)
	assert.True(t, out.Net.IsZero(), "net floors at zero, got %s", out.Net)
	assert.True(t, out.Gross.Equal(decimal.NewFromInt(100)))
	assert.True(t, out.Deductions.Equal(decimal.NewFromInt(500)))
}

func TestCalculate_EmptyFactsYieldZero(t *testing.T) {
	calc := NewCalculator()

	out, err := calc.Calculate(Input{
		Config: salary.Config{
			SalaryType: salary.TypeHourly,
			HourlyRate: decimal.NewFromInt(300),
		},
	})
	require.NoError(t, err)
	assert.True(t, out.Net.IsZero())
	assert.True(t, out.Regular.IsZero())
}

func TestCalculate_InvalidConfig(t *testing.T) {
	calc := NewCalculator()

	cases := []struct {
		name string
		cfg  salary.Config
	}{
		{"unknown type", salary.Config{SalaryType: "weekly"}},
		{"monthly without expected hours", salary.Config{
			SalaryType:    salary.TypeMonthly,
			MonthlySalary: decimal.NewFromInt(66000),
		}},
		{"negative hourly rate", salary.Config{
			SalaryType: salary.TypeHourly,
			HourlyRate: decimal.NewFromInt(-1),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(Input{Config: tc.cfg})
			assert.ErrorIs(t, err, salary.ErrInvalidSalaryConfig)
		})
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := NewCalculator()

	in := Input{
		Config: salary.Config{
			SalaryType:          salary.TypeMonthly,
			MonthlySalary:       decimal.NewFromInt(70000),
			ExpectedHoursPerDay: decimal.NewFromInt(7),
		},
		Facts: []attendance.Fact{
			day("2025-03-03", 25200, 1800),
			day("2025-03-04", 20000, 0),
			day("2025-03-05", 0, 0),
		},
		Deductions:          decimal.NewFromInt(123),
		CompanyOvertimeRate: decimal.NewFromFloat(1.5),
	}

	first, err := calc.Calculate(in)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := calc.Calculate(in)
		require.NoError(t, err)
		assert.True(t, first.Net.Equal(again.Net))
		assert.True(t, first.Regular.Equal(again.Regular))
		assert.True(t, first.Overtime.Equal(again.Overtime))
		assert.True(t, first.Gross.Equal(again.Gross))
	}
}
