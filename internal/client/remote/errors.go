package remote

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling with errors.Is/As.
var (
	// ErrNetwork covers connectivity loss and timeouts.
	ErrNetwork = errors.New("network failure")

	// ErrDecode covers malformed response bodies.
	ErrDecode = errors.New("decode failure")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Retryable returns true if the error should trigger a retry.
// Network failures and 5xx responses are retryable; 4xx responses are a
// permanent rejection and decode failures will not improve on a resend.
func Retryable(err error) bool {
	if errors.Is(err, ErrNetwork) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= 500
	}
	return false
}
