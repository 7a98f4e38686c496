package payperiod

import "errors"

var (
	ErrPayPeriodNotFound      = errors.New("pay period not found")
	ErrInvalidStateTransition = errors.New("pay period state transition not allowed")
	ErrPeriodNotOpen          = errors.New("pay period is not open for invoice generation")
)
