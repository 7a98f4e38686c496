package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/salary"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) GetConfig(ctx context.Context, userID string) (salary.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, salary_type, COALESCE(hourly_rate, 0), COALESCE(monthly_salary, 0),
			   expected_hours_per_day, COALESCE(min_daily_hours, 0), override_overtime_rate, currency
		FROM salary_configs
		WHERE user_id = $1
	`

	var c salary.Config
	err := q.QueryRow(ctx, query, userID).Scan(
		&c.UserID, &c.SalaryType, &c.HourlyRate, &c.MonthlySalary, &c.ExpectedHoursPerDay,
		&c.MinDailyHours, &c.OverrideOvertimeRate, &c.Currency,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Config{}, salary.ErrSalaryConfigNotFound
		}
		return salary.Config{}, fmt.Errorf("failed to get salary config: %w", err)
	}

	return c, nil
}

func (r *salaryRepository) GetCompanyOvertimeRate(ctx context.Context, companyID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var rate decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT COALESCE(default_overtime_rate, 1.5)
		FROM companies
		WHERE id = $1
	`, companyID).Scan(&rate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return decimal.NewFromFloat(1.5), nil
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get company overtime rate: %w", err)
	}

	return rate, nil
}
