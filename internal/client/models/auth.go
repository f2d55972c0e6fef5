package models

import "strings"

// Credentials is the login form. Username is sent to the server but is not
// required locally.
type Credentials struct {
	Email    string `json:"email" validate:"notblank"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

// Validate rejects blank email or password.
func (c Credentials) Validate() error {
	fes, err := fieldErrors(c)
	if err != nil {
		return err
	}
	if len(fes) > 0 {
		return ErrLoginFieldsRequired
	}
	return nil
}

// Reset clears every field.
func (c *Credentials) Reset() {
	*c = Credentials{}
}

// RegistrationInput is the register form.
type RegistrationInput struct {
	Email    string `json:"email" validate:"notblank,emailshape"`
	Username string `json:"username" validate:"notblank,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// Validate applies the register rules in order and stops at the first
// failure: required fields, email shape, username length, password length.
// Lengths are counted in characters, not bytes. The email is matched as
// typed, surrounding spaces included.
func (r RegistrationInput) Validate() error {
	fes, err := fieldErrors(r)
	if err != nil {
		return err
	}
	if len(fes) == 0 {
		return nil
	}

	for _, fe := range fes {
		if isPresenceTag(fe.Tag()) {
			return ErrAllFieldsRequired
		}
	}

	switch fe := fes[0]; {
	case fe.Tag() == tagEmailShape:
		return ErrInvalidEmail
	case fe.Field() == "Username":
		return ErrUsernameTooShort
	case fe.Field() == "Password":
		return ErrPasswordTooShort
	}
	return fes
}

// Normalized returns the payload sent to the server: email and username
// trimmed, password untouched.
func (r RegistrationInput) Normalized() RegistrationInput {
	return RegistrationInput{
		Email:    strings.TrimSpace(r.Email),
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
}

// Reset clears every field.
func (r *RegistrationInput) Reset() {
	*r = RegistrationInput{}
}

// UserSummary is the minimal user record returned by login and kept in the
// session store.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
