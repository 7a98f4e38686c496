package payperiod

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
)

type PayPeriodServiceImpl struct {
	db         *database.DB
	periodRepo payperiod.PayPeriodRepository
}

func NewPayPeriodService(db *database.DB, periodRepo payperiod.PayPeriodRepository) payperiod.PayPeriodService {
	return &PayPeriodServiceImpl{
		db:         db,
		periodRepo: periodRepo,
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *PayPeriodServiceImpl) EnsurePayPeriod(ctx context.Context, year, month int) (payperiod.PayPeriodResponse, error) {
	req := payperiod.CreatePayPeriodRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return payperiod.PayPeriodResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}

	start, end := payperiod.MonthBounds(year, month)
	period, err := s.periodRepo.Ensure(ctx, companyID, start, end)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}

	return mapToResponse(period), nil
}

func (s *PayPeriodServiceImpl) LockPayPeriod(ctx context.Context, periodID string) (payperiod.PayPeriodResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}

	period, err := s.periodRepo.Lock(ctx, periodID, companyID)
	if err != nil {
		return payperiod.PayPeriodResponse{}, err
	}

	return mapToResponse(period), nil
}

func (s *PayPeriodServiceImpl) ListPayPeriods(ctx context.Context, year int) ([]payperiod.PayPeriodListItem, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := s.periodRepo.ListByYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	result := make([]payperiod.PayPeriodListItem, 0, len(periods))
	for _, p := range periods {
		result = append(result, payperiod.PayPeriodListItem{
			PayPeriodResponse: mapToResponse(p.PayPeriod),
			DraftCount:        p.Counts.Draft,
			ApprovedCount:     p.Counts.Approved,
			PaidCount:         p.Counts.Paid,
		})
	}

	return result, nil
}

func mapToResponse(p payperiod.PayPeriod) payperiod.PayPeriodResponse {
	return payperiod.PayPeriodResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
	}
}
