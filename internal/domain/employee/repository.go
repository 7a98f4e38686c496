package employee

import "context"

type EmployeeRepository interface {
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
