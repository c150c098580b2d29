package tmdb

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized is returned for a missing or invalid API key
	ErrUnauthorized = errors.New("tmdb: unauthorized")

	// ErrNotFound is returned when the requested resource does not exist
	ErrNotFound = errors.New("tmdb: not found")
)

// APIError is a non-2xx answer from the API
type APIError struct {
	HTTPStatus int
	Code       int    `json:"status_code"`
	Message    string `json:"status_message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: http %d", e.HTTPStatus)
	}
	return fmt.Sprintf("tmdb: %s (http %d)", e.Message, e.HTTPStatus)
}

// Is maps status codes onto the package sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.HTTPStatus == http.StatusUnauthorized
	case ErrNotFound:
		return e.HTTPStatus == http.StatusNotFound
	}
	return false
}

// clientError reports whether err is a 4xx answer. Those do not count
// against the circuit breaker.
func clientError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatus >= 400 && apiErr.HTTPStatus < 500
	}
	return false
}
