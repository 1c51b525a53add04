package newsapi

import (
	"errors"
	"fmt"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// TransportError wraps failures to reach the service or to read its answer:
// network errors, timeouts, cancellation and undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
