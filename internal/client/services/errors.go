package services

import (
	"errors"

	"github.com/dmitrijs2005/gophprofile/internal/client/api"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

const (
	MsgNetworkError   = "Network error, please try again."
	MsgNoAccessToken  = "No access token found. Please login again."
	MsgSessionExpired = "Session expired. Please login again."
)

var (
	// ErrNoToken means the session store holds no bearer token.
	ErrNoToken = errors.New("no access token")
	// ErrSessionExpired means the server rejected the stored token.
	ErrSessionExpired = errors.New("session expired")
)

// UserError carries the message shown to the user next to the cause.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

func userError(msg string, err error) error {
	return &UserError{Message: msg, Err: err}
}

// UserMessage returns the text to show for err. Validation failures and
// mapped server answers keep their own text; transport and decode failures
// collapse to one generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if api.IsNetworkError(err) {
		return MsgNetworkError
	}
	return err.Error()
}

// IsRejected reports whether err is a server answer with a non-2xx status.
func IsRejected(err error) bool {
	_, ok := api.AsResponseError(err)
	return ok
}

func networkError(err error) error {
	return userError(MsgNetworkError, err)
}
