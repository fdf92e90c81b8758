package client

import (
	"errors"
	"net/http"
)

// APIError is the one error shape callers see, regardless of whether the
// server rejected the request, never answered, or the request could not
// be built.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func asAPIError(err error, target **APIError) bool {
	return errors.As(err, target)
}

func transportError(err error) *APIError {
	return &APIError{
		Message: "cannot reach server: " + err.Error(),
	}
}
