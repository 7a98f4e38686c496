package user

import "errors"

var (
	ErrAdminAccessRequired = errors.New("admin or owner role required")
	ErrInvalidToken        = errors.New("invalid or missing access token")
)
