package errors

import "fmt"

// QuotaError carries the open-order count that blocked a submission.
// It unwraps to ErrQuotaExceeded so callers can match with errors.Is.
type QuotaError struct {
	OpenCount int
	Limit     int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("pending order quota exceeded: %d of %d slots used", e.OpenCount, e.Limit)
}

func (e *QuotaError) Unwrap() error {
	return ErrQuotaExceeded
}
