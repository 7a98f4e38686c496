package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type payPeriodRepository struct {
	db *database.DB
}

func NewPayPeriodRepository(db *database.DB) payperiod.PayPeriodRepository {
	return &payPeriodRepository{db: db}
}

const payPeriodColumns = `id, company_id, start_date, end_date, status, created_at, updated_at`

func scanPayPeriod(row pgx.Row) (payperiod.PayPeriod, error) {
	var p payperiod.PayPeriod
	err := row.Scan(&p.ID, &p.CompanyID, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *payPeriodRepository) Ensure(ctx context.Context, companyID string, start, end time.Time) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	// DO NOTHING on the (company_id, start_date, end_date) unique key
	// makes concurrent first-creation converge on a single row; losers
	// fall through to the fetch below.
	insert := `
		INSERT INTO pay_periods (company_id, start_date, end_date, status)
		VALUES ($1, $2, $3, 'open')
		ON CONFLICT (company_id, start_date, end_date) DO NOTHING
		RETURNING ` + payPeriodColumns

	p, err := scanPayPeriod(q.QueryRow(ctx, insert, companyID, start, end))
	if err == nil {
		return p, nil
	}
	if err != pgx.ErrNoRows {
		return payperiod.PayPeriod{}, fmt.Errorf("failed to ensure pay period: %w", err)
	}

	fetch := `
		SELECT ` + payPeriodColumns + `
		FROM pay_periods
		WHERE company_id = $1 AND start_date = $2 AND end_date = $3
	`
	p, err = scanPayPeriod(q.QueryRow(ctx, fetch, companyID, start, end))
	if err != nil {
		return payperiod.PayPeriod{}, fmt.Errorf("failed to fetch pay period after conflict: %w", err)
	}

	return p, nil
}

func (r *payPeriodRepository) GetByID(ctx context.Context, id string, companyID string) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payPeriodColumns + `
		FROM pay_periods
		WHERE id = $1 AND company_id = $2
	`

	p, err := scanPayPeriod(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payperiod.PayPeriod{}, payperiod.ErrPayPeriodNotFound
		}
		return payperiod.PayPeriod{}, fmt.Errorf("failed to get pay period: %w", err)
	}

	return p, nil
}

func (r *payPeriodRepository) Lock(ctx context.Context, id string, companyID string) (payperiod.PayPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods
		SET status = 'locked', updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'open'
		RETURNING ` + payPeriodColumns

	p, err := scanPayPeriod(q.QueryRow(ctx, query, id, companyID))
	if err == nil {
		return p, nil
	}
	if err != pgx.ErrNoRows {
		return payperiod.PayPeriod{}, fmt.Errorf("failed to lock pay period: %w", err)
	}

	// Guard didn't match: distinguish missing row from wrong state.
	if _, err := r.GetByID(ctx, id, companyID); err != nil {
		return payperiod.PayPeriod{}, err
	}
	return payperiod.PayPeriod{}, payperiod.ErrInvalidStateTransition
}

func (r *payPeriodRepository) ListByYear(ctx context.Context, companyID string, year int) ([]payperiod.PayPeriodWithCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.company_id, p.start_date, p.end_date, p.status, p.created_at, p.updated_at,
			   COUNT(i.id) FILTER (WHERE i.status = 'draft') AS draft_count,
			   COUNT(i.id) FILTER (WHERE i.status = 'approved') AS approved_count,
			   COUNT(i.id) FILTER (WHERE i.status = 'paid') AS paid_count
		FROM pay_periods p
		LEFT JOIN invoices i ON i.pay_period_id = p.id
		WHERE p.company_id = $1 AND EXTRACT(YEAR FROM p.start_date) = $2
		GROUP BY p.id
		ORDER BY p.start_date DESC
	`

	rows, err := q.Query(ctx, query, companyID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay periods: %w", err)
	}
	defer rows.Close()

	var periods []payperiod.PayPeriodWithCounts
	for rows.Next() {
		var p payperiod.PayPeriodWithCounts
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.StartDate, &p.EndDate, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.Counts.Draft, &p.Counts.Approved, &p.Counts.Paid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

func (r *payPeriodRepository) SettleIfFullyPaid(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE pay_periods p
		SET status = 'settled', updated_at = NOW()
		WHERE p.id = $1
		  AND p.status <> 'settled'
		  AND EXISTS (SELECT 1 FROM invoices i WHERE i.pay_period_id = p.id)
		  AND NOT EXISTS (
			SELECT 1 FROM invoices i
			WHERE i.pay_period_id = p.id AND i.status <> 'paid'
		  )
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to settle pay period: %w", err)
	}
	return nil
}

func (r *payPeriodRepository) ListCompanyIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
