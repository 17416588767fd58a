package httpclient

import "fmt"

// ServerError indicates the upstream service responded with a 5xx status.
// The circuit breaker counts these as failures.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
