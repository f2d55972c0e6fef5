package models

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Tags registered on top of the validator built-ins.
const (
	tagNotBlank   = "notblank"
	tagEmailShape = "emailshape"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation(tagNotBlank, validators.NotBlank); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(tagEmailShape, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// fieldErrors runs the struct rules and returns the failures in field
// declaration order.
func fieldErrors(s any) (validator.ValidationErrors, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return nil, err
	}
	return fes, nil
}

func isPresenceTag(tag string) bool {
	return tag == "required" || tag == tagNotBlank
}
