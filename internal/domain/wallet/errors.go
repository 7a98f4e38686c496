package wallet

import "errors"

var (
	ErrInvalidCreditAmount = errors.New("credit amount must not be negative")
)
