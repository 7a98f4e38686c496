package salary

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalaryRepository is the boundary to the salary/schedule configuration
// editor. The engine only ever reads.
type SalaryRepository interface {
	GetConfig(ctx context.Context, userID string) (Config, error)

	// GetCompanyOvertimeRate returns the company default overtime
	// multiplier (1.5 when unset).
	GetCompanyOvertimeRate(ctx context.Context, companyID string) (decimal.Decimal, error)
}
