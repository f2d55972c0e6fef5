package models

// ValidationError is a user-facing rejection of local input. The sentinel
// values below are compared with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	// login
	ErrLoginFieldsRequired = &ValidationError{Message: "Email, username and password are required"}

	// register
	ErrAllFieldsRequired = &ValidationError{Message: "All fields are required"}
	ErrInvalidEmail      = &ValidationError{Message: "Please enter a valid email address"}
	ErrUsernameTooShort  = &ValidationError{Message: "Username must be at least 3 characters long"}
	ErrPasswordTooShort  = &ValidationError{Message: "Password must be at least 6 characters long"}

	// interests
	ErrInterestBlank     = &ValidationError{Message: "Please enter a valid interest"}
	ErrInterestDuplicate = &ValidationError{Message: "This interest is already added"}
	ErrInterestsLimit    = &ValidationError{Message: "Maximum 10 interests allowed"}
	ErrInterestTooLong   = &ValidationError{Message: "Interest must be at most 50 characters"}
)
