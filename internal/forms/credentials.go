package forms

// Credentials is the email/password pair collected by both forms. It lives for one
// submission attempt only.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"email"`
	Password string `json:"password" form:"password" validate:"min=6"`
}

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	MessageInvalidEmail  = "Invalid email address"
	MessagePasswordShort = "Password must be at least 6 characters"
)

// ErrorSet maps a form field name to the message shown under its input.
type ErrorSet map[string]string

func (e ErrorSet) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e ErrorSet) Get(field string) string {
	return e[field]
}
