package substrate

import (
	"errors"
	"fmt"
)

// ErrCircuitOpen is returned without any HTTP attempt while the breaker is
// open or the half-open probe budget is spent.
var ErrCircuitOpen = errors.New("substrate circuit open")

// APIError is a non-2xx response from the substrate service.
type APIError struct {
	StatusCode int
	Kind       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("substrate %d (%s): %s", e.StatusCode, e.Kind, e.Message)
	}
	return fmt.Sprintf("substrate %d: %s", e.StatusCode, e.Message)
}

// Retryable reports whether the request may be retried:
// 408, 429, or any 5xx. Transport failures are retryable by definition and
// never reach this type.
func (e *APIError) Retryable() bool {
	return e.StatusCode == 408 || e.StatusCode == 429 || e.StatusCode >= 500
}

// retryable covers both API errors and transport failures.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	// Transport-level failure (connection refused, reset, timeout).
	return true
}

// IsNotFound reports whether err is a substrate 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsConflict reports whether err is a substrate 409.
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 409
}

// IsUnavailable reports whether err should surface as substrate
// unavailability: an open circuit or an exhausted-retry server failure.
func IsUnavailable(err error) bool {
	if errors.Is(err, ErrCircuitOpen) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
