package backend

import (
	"errors"
	"fmt"
)

// APIError is a failure the backend reported with an HTTP status and,
// usually, a message meant for the user.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("backend: request failed with status %d", e.StatusCode)
}

// Message extracts the backend's user-facing message from err, falling back
// to the supplied text for transport failures and messageless responses.
// Callers own the user-facing reporting, so this is where the generic
// fallback policy lives.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// StatusCode returns the backend status carried by err, or 0 when the error
// never reached the backend.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
