package invoice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/attendance"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/employee"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/salary"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/user"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/wallet"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/pdf"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/repository/postgresql"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/service/earnings"
)

type InvoiceServiceImpl struct {
	db             *database.DB
	invoiceRepo    invoice.InvoiceRepository
	periodRepo     payperiod.PayPeriodRepository
	employeeRepo   employee.EmployeeRepository
	salaryRepo     salary.SalaryRepository
	attendanceRepo attendance.AttendanceRepository
	walletRepo     wallet.WalletRepository
	calculator     *earnings.Calculator
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	periodRepo payperiod.PayPeriodRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
	attendanceRepo attendance.AttendanceRepository,
	walletRepo wallet.WalletRepository,
	calculator *earnings.Calculator,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:             db,
		invoiceRepo:    invoiceRepo,
		periodRepo:     periodRepo,
		employeeRepo:   employeeRepo,
		salaryRepo:     salaryRepo,
		attendanceRepo: attendanceRepo,
		walletRepo:     walletRepo,
		calculator:     calculator,
	}
}

// Helper to get company_id, user_id and role from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)
	roleStr, _ := claims["role"].(string)

	return companyID, userID, user.Role(roleStr), nil
}

// ========== GENERATION ==========

func (s *InvoiceServiceImpl) GenerateInvoices(ctx context.Context, periodID string) (invoice.GenerationResult, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return invoice.GenerationResult{}, err
	}

	period, err := s.periodRepo.GetByID(ctx, periodID, companyID)
	if err != nil {
		return invoice.GenerationResult{}, err
	}
	if period.Status != payperiod.StatusOpen {
		return invoice.GenerationResult{}, payperiod.ErrPeriodNotOpen
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return invoice.GenerationResult{}, fmt.Errorf("failed to get employees: %w", err)
	}

	overtimeRate, err := s.salaryRepo.GetCompanyOvertimeRate(ctx, companyID)
	if err != nil {
		return invoice.GenerationResult{}, err
	}

	var result invoice.GenerationResult
	for _, emp := range employees {
		config, err := s.salaryRepo.GetConfig(ctx, emp.UserID)
		if err != nil {
			if errors.Is(err, salary.ErrSalaryConfigNotFound) {
				result.Skipped = append(result.Skipped, invoice.SkippedEmployee{
					UserID: emp.UserID,
					Reason: "no salary config",
				})
				continue
			}
			return invoice.GenerationResult{}, err
		}

		facts, err := s.attendanceRepo.GetFacts(ctx, companyID, emp.UserID, period.StartDate, period.EndDate)
		if err != nil {
			return invoice.GenerationResult{}, err
		}

		breakdown, err := s.calculator.Calculate(earnings.Input{
			Config:              config,
			Facts:               facts,
			Deductions:          decimal.Zero,
			CompanyOvertimeRate: overtimeRate,
		})
		if err != nil {
			if errors.Is(err, salary.ErrInvalidSalaryConfig) {
				result.Skipped = append(result.Skipped, invoice.SkippedEmployee{
					UserID: emp.UserID,
					Reason: "invalid salary config",
				})
				continue
			}
			return invoice.GenerationResult{}, err
		}

		currency := config.Currency
		if currency == "" {
			currency = "USD"
		}

		upserted, err := s.invoiceRepo.UpsertDraft(ctx, invoice.Invoice{
			PayPeriodID:    period.ID,
			CompanyID:      companyID,
			UserID:         emp.UserID,
			GrossAmount:    breakdown.Gross,
			RegularAmount:  breakdown.Regular,
			OvertimeAmount: breakdown.Overtime,
			Deductions:     breakdown.Deductions,
			NetAmount:      breakdown.Net,
			Currency:       currency,
		})
		if err != nil {
			return invoice.GenerationResult{}, fmt.Errorf("failed to upsert invoice for user %s: %w", emp.UserID, err)
		}

		result.Invoices = append(result.Invoices, invoice.ToResponse(upserted))
	}

	slog.Info("Generated invoices",
		"period_id", period.ID,
		"company_id", companyID,
		"invoice_count", len(result.Invoices),
		"skipped_count", len(result.Skipped),
	)

	return result, nil
}

// ========== APPROVAL & SETTLEMENT ==========

func (s *InvoiceServiceImpl) ApproveInvoice(ctx context.Context, invoiceID string) (invoice.InvoiceResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	approved, err := s.invoiceRepo.Approve(ctx, invoiceID, companyID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.ToResponse(approved), nil
}

func (s *InvoiceServiceImpl) PayInvoice(ctx context.Context, invoiceID string) (invoice.PaymentResponse, error) {
	companyID, callerID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return invoice.PaymentResponse{}, err
	}

	paid, txn, err := s.settleOne(ctx, invoiceID, companyID, callerID)
	if err != nil {
		return invoice.PaymentResponse{}, err
	}

	// Best-effort: a fully paid period settles itself.
	if err := s.periodRepo.SettleIfFullyPaid(ctx, paid.PayPeriodID); err != nil {
		slog.Warn("Failed to settle pay period", "period_id", paid.PayPeriodID, "error", err)
	}

	return invoice.PaymentResponse{
		Invoice:     invoice.ToResponse(paid),
		Transaction: txn,
	}, nil
}

// settleOne credits the wallet and flips the invoice to paid as one
// atomic unit. The row lock taken by GetByIDForUpdate serializes racing
// payments; the ledger's reference-id dedupe backstops any retry after a
// partially observed failure.
func (s *InvoiceServiceImpl) settleOne(ctx context.Context, invoiceID, companyID, paidBy string) (invoice.Invoice, wallet.TransactionResponse, error) {
	var paid invoice.Invoice
	var txnResp wallet.TransactionResponse

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inv, err := s.invoiceRepo.GetByIDForUpdate(txCtx, invoiceID, companyID)
		if err != nil {
			return err
		}
		if !inv.Status.CanTransitionTo(invoice.StatusPaid) {
			return invoice.ErrInvalidStateTransition
		}

		txn, duplicate, err := s.walletRepo.Credit(txCtx, inv.UserID, inv.NetAmount, inv.ID)
		if err != nil {
			return err
		}
		if duplicate {
			// A previous attempt credited the wallet but never flipped
			// the invoice. Reuse the existing transaction and finish the
			// flip; the money moved exactly once.
			slog.Info("Duplicate credit suppressed", "invoice_id", inv.ID, "transaction_id", txn.ID)
		}

		paid, err = s.invoiceRepo.MarkPaid(txCtx, inv.ID, companyID, paidBy)
		if err != nil {
			return err
		}

		txnResp = wallet.ToTransactionResponse(txn)
		txnResp.Duplicate = duplicate
		return nil
	})
	if err != nil {
		return invoice.Invoice{}, wallet.TransactionResponse{}, err
	}

	return paid, txnResp, nil
}

func (s *InvoiceServiceImpl) PayAllInvoices(ctx context.Context, periodID string) ([]invoice.PayAllResult, error) {
	companyID, callerID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.periodRepo.GetByID(ctx, periodID, companyID); err != nil {
		return nil, err
	}

	approved, err := s.invoiceRepo.ListApprovedByPeriod(ctx, periodID, companyID)
	if err != nil {
		return nil, err
	}

	// Each settlement is its own transaction: one bad invoice (or a
	// caller hanging up) never unwinds payments that already committed.
	results := make([]invoice.PayAllResult, 0, len(approved))
	for _, inv := range approved {
		if ctx.Err() != nil {
			break
		}

		entry := invoice.PayAllResult{InvoiceID: inv.ID, UserID: inv.UserID}
		if _, _, err := s.settleOne(ctx, inv.ID, companyID, callerID); err != nil {
			entry.Error = err.Error()
			slog.Warn("Failed to pay invoice", "invoice_id", inv.ID, "error", err)
		} else {
			entry.Success = true
		}
		results = append(results, entry)
	}

	if err := s.periodRepo.SettleIfFullyPaid(ctx, periodID); err != nil {
		slog.Warn("Failed to settle pay period", "period_id", periodID, "error", err)
	}

	return results, nil
}

// ========== READS ==========

func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, periodID string) ([]invoice.InvoiceResponse, error) {
	companyID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListByPeriod(ctx, periodID, companyID)
	if err != nil {
		return nil, err
	}

	return invoice.ToResponses(invoices), nil
}

func (s *InvoiceServiceImpl) ListMyInvoices(ctx context.Context) ([]invoice.InvoiceResponse, error) {
	_, userID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return invoice.ToResponses(invoices), nil
}

func (s *InvoiceServiceImpl) RenderPayslipPDF(ctx context.Context, invoiceID string) ([]byte, error) {
	companyID, callerID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID, companyID)
	if err != nil {
		return nil, err
	}
	if inv.UserID != callerID && !user.CanManagePayroll(role) {
		return nil, invoice.ErrInvoiceNotFound
	}

	period, err := s.periodRepo.GetByID(ctx, inv.PayPeriodID, companyID)
	if err != nil {
		return nil, err
	}

	// Pull the enriched row for the employee name on the slip.
	enriched, err := s.invoiceRepo.ListByPeriod(ctx, inv.PayPeriodID, companyID)
	if err != nil {
		return nil, err
	}
	for _, e := range enriched {
		if e.ID == inv.ID {
			inv = e
			break
		}
	}

	return pdf.RenderPayslip(inv, period)
}
