package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceColumns = `id, pay_period_id, company_id, user_id, gross_amount, regular_amount,
	overtime_amount, deductions, net_amount, currency, status, paid_at, paid_by, created_at, updated_at`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID, &inv.PayPeriodID, &inv.CompanyID, &inv.UserID, &inv.GrossAmount, &inv.RegularAmount,
		&inv.OvertimeAmount, &inv.Deductions, &inv.NetAmount, &inv.Currency, &inv.Status,
		&inv.PaidAt, &inv.PaidBy, &inv.CreatedAt, &inv.UpdatedAt,
	)
	return inv, err
}

func (r *invoiceRepository) UpsertDraft(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	// The WHERE on the conflict arm is the settlement-immutability guard:
	// only draft rows take fresh figures. When it filters the update out,
	// no row comes back and the existing approved/paid row is returned
	// untouched.
	query := `
		INSERT INTO invoices (
			pay_period_id, company_id, user_id, gross_amount, regular_amount,
			overtime_amount, deductions, net_amount, currency, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'draft')
		ON CONFLICT (pay_period_id, user_id) DO UPDATE SET
			gross_amount = EXCLUDED.gross_amount,
			regular_amount = EXCLUDED.regular_amount,
			overtime_amount = EXCLUDED.overtime_amount,
			deductions = EXCLUDED.deductions,
			net_amount = EXCLUDED.net_amount,
			currency = EXCLUDED.currency,
			updated_at = NOW()
		WHERE invoices.status = 'draft'
		RETURNING ` + invoiceColumns

	row, err := scanInvoice(q.QueryRow(ctx, query,
		inv.PayPeriodID, inv.CompanyID, inv.UserID, inv.GrossAmount, inv.RegularAmount,
		inv.OvertimeAmount, inv.Deductions, inv.NetAmount, inv.Currency,
	))
	if err == nil {
		return row, nil
	}
	if err != pgx.ErrNoRows {
		return invoice.Invoice{}, fmt.Errorf("failed to upsert invoice: %w", err)
	}

	return r.GetByPeriodUser(ctx, inv.PayPeriodID, inv.UserID)
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string, companyID string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1 AND company_id = $2
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) GetByIDForUpdate(ctx context.Context, id string, companyID string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to lock invoice: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) GetByPeriodUser(ctx context.Context, periodID, userID string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE pay_period_id = $1 AND user_id = $2
	`

	inv, err := scanInvoice(q.QueryRow(ctx, query, periodID, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice by period and user: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) listEnriched(ctx context.Context, where string, args ...interface{}) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT i.id, i.pay_period_id, i.company_id, i.user_id, i.gross_amount, i.regular_amount,
			   i.overtime_amount, i.deductions, i.net_amount, i.currency, i.status,
			   i.paid_at, i.paid_by, i.created_at, i.updated_at,
			   e.full_name AS employee_name, e.employee_code,
			   p.start_date AS period_start, p.end_date AS period_end
		FROM invoices i
		LEFT JOIN employees e ON e.user_id = i.user_id AND e.company_id = i.company_id
		JOIN pay_periods p ON p.id = i.pay_period_id
		` + where

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.PayPeriodID, &inv.CompanyID, &inv.UserID, &inv.GrossAmount, &inv.RegularAmount,
			&inv.OvertimeAmount, &inv.Deductions, &inv.NetAmount, &inv.Currency, &inv.Status,
			&inv.PaidAt, &inv.PaidBy, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.EmployeeName, &inv.EmployeeCode, &inv.PeriodStart, &inv.PeriodEnd,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (r *invoiceRepository) ListByPeriod(ctx context.Context, periodID string, companyID string) ([]invoice.Invoice, error) {
	return r.listEnriched(ctx,
		`WHERE i.pay_period_id = $1 AND i.company_id = $2 ORDER BY e.full_name NULLS LAST, i.created_at`,
		periodID, companyID)
}

func (r *invoiceRepository) ListApprovedByPeriod(ctx context.Context, periodID string, companyID string) ([]invoice.Invoice, error) {
	return r.listEnriched(ctx,
		`WHERE i.pay_period_id = $1 AND i.company_id = $2 AND i.status = 'approved' ORDER BY i.created_at`,
		periodID, companyID)
}

func (r *invoiceRepository) ListByUser(ctx context.Context, userID string) ([]invoice.Invoice, error) {
	return r.listEnriched(ctx,
		`WHERE i.user_id = $1 ORDER BY p.start_date DESC`,
		userID)
}

func (r *invoiceRepository) Approve(ctx context.Context, id string, companyID string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invoices
		SET status = 'approved', updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'draft'
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, companyID))
	if err == nil {
		return inv, nil
	}
	if err != pgx.ErrNoRows {
		return invoice.Invoice{}, fmt.Errorf("failed to approve invoice: %w", err)
	}

	existing, err := r.GetByID(ctx, id, companyID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	if existing.Status == invoice.StatusPaid {
		return invoice.Invoice{}, invoice.ErrInvoiceImmutable
	}
	return invoice.Invoice{}, invoice.ErrInvalidStateTransition
}

func (r *invoiceRepository) MarkPaid(ctx context.Context, id string, companyID string, paidBy string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	// paid_by is a UUID column; an absent actor is recorded as NULL.
	var paidByArg interface{}
	if paidBy != "" {
		paidByArg = paidBy
	}

	query := `
		UPDATE invoices
		SET status = 'paid', paid_at = NOW(), paid_by = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'approved'
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(q.QueryRow(ctx, query, id, companyID, paidByArg))
	if err == nil {
		return inv, nil
	}
	if err != pgx.ErrNoRows {
		return invoice.Invoice{}, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	if _, err := r.GetByID(ctx, id, companyID); err != nil {
		return invoice.Invoice{}, err
	}
	return invoice.Invoice{}, invoice.ErrInvalidStateTransition
}
