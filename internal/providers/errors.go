package providers

import (
	"errors"
	"fmt"
)

// StatusError captures a non-success HTTP response from an upstream source.
type StatusError struct {
	Source     string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Source, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Source, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
