package invoice

import "errors"

var (
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidStateTransition = errors.New("invoice state transition not allowed")
	ErrInvoiceImmutable       = errors.New("paid invoice cannot be modified")
)
