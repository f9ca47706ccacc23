package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures (backend unreachable).
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized marks 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks 404 responses.
	ErrNotFound = errors.New("not found")
)

// HTTPError carries the backend's own error message for a non-2xx response,
// falling back to the HTTP status text when the body had none.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// Unwrap lets callers match coarse categories with errors.Is.
func (e *HTTPError) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	}
	return nil
}
