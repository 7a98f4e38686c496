package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
)

// PayPeriodJobs keeps every company's current-month period in existence
// so invoice generation never races period creation at month rollover.
type PayPeriodJobs struct {
	periodRepo payperiod.PayPeriodRepository
}

func NewPayPeriodJobs(periodRepo payperiod.PayPeriodRepository) *PayPeriodJobs {
	return &PayPeriodJobs{periodRepo: periodRepo}
}

func (j *PayPeriodJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("ensure_current_pay_periods", interval, j.EnsureCurrentPeriods)
}

func (j *PayPeriodJobs) EnsureCurrentPeriods(ctx context.Context) error {
	companyIDs, err := j.periodRepo.ListCompanyIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	now := time.Now().UTC()
	start, end := payperiod.MonthBounds(now.Year(), int(now.Month()))

	ensured := 0
	for _, companyID := range companyIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := j.periodRepo.Ensure(ctx, companyID, start, end); err != nil {
			slog.Error("Cron: Failed to ensure pay period", "company_id", companyID, "error", err)
			continue
		}
		ensured++
	}

	slog.Info("Cron: Ensured current pay periods", "companies", len(companyIDs), "ensured", ensured)
	return nil
}
