package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
	ErrBadResponse  = errors.New("malformed server response")
)

// ResponseError is a non-2xx answer from the server.
type ResponseError struct {
	Status    int
	Message   string
	ErrorText string
}

func (e *ResponseError) Error() string {
	switch {
	case e.ErrorText != "" && e.Message != "":
		return fmt.Sprintf("status %d: %s: %s", e.Status, e.ErrorText, e.Message)
	case e.ErrorText != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.ErrorText)
	case e.Message != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("status %d", e.Status)
	}
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match 401 answers.
func (e *ResponseError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// AsResponseError extracts a *ResponseError from err.
func AsResponseError(err error) (*ResponseError, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
