package salary

import "errors"

var (
	ErrSalaryConfigNotFound = errors.New("salary config not found")
	ErrInvalidSalaryConfig  = errors.New("salary config is invalid")
)
