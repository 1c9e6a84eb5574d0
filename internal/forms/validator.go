package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks Credentials before anything leaves the server. It is safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so ErrorSet keys match the form inputs.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: validate}
}

// Validate returns one message per failing field, or an empty set when the
// credentials are acceptable.
func (v *Validator) Validate(creds Credentials) ErrorSet {
	err := v.validate.Struct(creds)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// only returned for non-struct input, which is a programmer error
		panic(err)
	}

	errs := make(ErrorSet, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		errs[fieldErr.Field()] = fieldMessage(fieldErr.Field())
	}
	return errs
}

func fieldMessage(field string) string {
	switch field {
	case FieldEmail:
		return MessageInvalidEmail
	case FieldPassword:
		return MessagePasswordShort
	default:
		return "Invalid value"
	}
}
