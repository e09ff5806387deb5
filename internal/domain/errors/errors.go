package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrQuotaExceeded      = errors.New("pending order quota exceeded")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrInvalidTransition  = errors.New("order already decided")
	ErrForbidden          = errors.New("forbidden")
)
