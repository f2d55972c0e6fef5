package screens

import "errors"

var (
	// ErrBusy rejects a submit while a request of the same screen is in
	// flight.
	ErrBusy = errors.New("request in progress")
	// ErrInvalidState rejects an action the current screen state does not
	// allow, e.g. editing before the profile has loaded.
	ErrInvalidState = errors.New("action not available in current state")
)
