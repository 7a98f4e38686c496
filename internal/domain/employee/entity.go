package employee

import "time"

// Employee - the minimal roster row the settlement engine needs: who is
// active in a company and which user account receives the money.
type Employee struct {
	ID           string
	UserID       string
	CompanyID    string
	FullName     string
	EmployeeCode string
	HireDate     time.Time
	IsActive     bool
}
