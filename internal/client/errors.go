package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// ErrUnexpectedResponse means the server answered with something other
// than the documented body.
var ErrUnexpectedResponse = errors.New("unexpected response")

// APIError is a non-2xx answer from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps statuses back onto the errors the local registry returns, so
// callers handle remote and local failures alike.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return service.ErrServiceNotFound
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return utils.ErrInvalidRequest
	default:
		return nil
	}
}

// Rejected reports whether the server refused the request itself rather
// than failing to serve it
func (e *APIError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// healthy tells the breaker which errors say nothing about server health
func healthy(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Rejected()
}
