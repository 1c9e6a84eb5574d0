package login

import (
	"authforms/internal/constants"
	"authforms/internal/forms"
)

// FormProps is everything the credentials form needs to render one state.
// The password is never part of it, so a failed attempt does not echo it back.
type FormProps struct {
	Heading     string
	Action      string
	SubmitLabel string
	AltText     string
	AltLink     string
	AltLabel    string
	Email       string
	Errors      forms.ErrorSet
}

func LoginForm(state forms.State) FormProps {
	return FormProps{
		Heading:     "Login",
		Action:      constants.LoginPath,
		SubmitLabel: "Login",
		AltText:     "No account yet?",
		AltLink:     constants.RegisterPath,
		AltLabel:    "Register",
		Email:       state.Values.Email,
		Errors:      state.Errors,
	}
}

func RegistrationForm(state forms.State) FormProps {
	return FormProps{
		Heading:     "Register",
		Action:      constants.RegisterPath,
		SubmitLabel: "Register",
		AltText:     "Already registered?",
		AltLink:     constants.LoginPath,
		AltLabel:    "Login",
		Email:       state.Values.Email,
		Errors:      state.Errors,
	}
}
