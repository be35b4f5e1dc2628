package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure of a single API call. Status is the HTTP status
// code, or 0 when no response was received.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("notes api: %s", e.Message)
	}
	return fmt.Sprintf("notes api: %d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsRateLimited reports whether err signals HTTP 429.
func IsRateLimited(err error) bool {
	return StatusOf(err) == http.StatusTooManyRequests
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
