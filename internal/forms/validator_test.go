package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInvalidEmail(t *testing.T) {
	errs := NewValidator().Validate(Credentials{Email: "bad", Password: "123456"})

	assert.Equal(t, ErrorSet{FieldEmail: MessageInvalidEmail}, errs)
}

func TestValidateShortPassword(t *testing.T) {
	errs := NewValidator().Validate(Credentials{Email: "a@b.com", Password: "123"})

	assert.Equal(t, ErrorSet{FieldPassword: MessagePasswordShort}, errs)
}

func TestValidateBothFields(t *testing.T) {
	errs := NewValidator().Validate(Credentials{})

	assert.Len(t, errs, 2)
	assert.Equal(t, MessageInvalidEmail, errs.Get(FieldEmail))
	assert.Equal(t, MessagePasswordShort, errs.Get(FieldPassword))
}

func TestValidateAccepts(t *testing.T) {
	v := NewValidator()

	for _, creds := range []Credentials{
		{Email: "a@b.com", Password: "secret1"},
		{Email: "first.last+tag@example.co.uk", Password: "123456"},
		{Email: "user@sub.domain.org", Password: "a much longer passphrase"},
	} {
		assert.Empty(t, v.Validate(creds), "%+v", creds)
	}
}

func TestValidateRejectsMalformedEmails(t *testing.T) {
	v := NewValidator()

	for _, email := range []string{"", "plainaddress", "@no-local.com", "two@@at.com", "spaces in@mail.com", "trailing@"} {
		errs := v.Validate(Credentials{Email: email, Password: "secret1"})
		assert.True(t, errs.Has(FieldEmail), "expected %q to be rejected", email)
		assert.False(t, errs.Has(FieldPassword))
	}
}

func TestValidatePasswordBoundary(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.Validate(Credentials{Email: "a@b.com", Password: "12345"}).Has(FieldPassword))
	assert.False(t, v.Validate(Credentials{Email: "a@b.com", Password: "123456"}).Has(FieldPassword))
}

func TestValidateIsIdempotent(t *testing.T) {
	v := NewValidator()
	creds := Credentials{Email: "bad", Password: "1"}

	first := v.Validate(creds)
	second := v.Validate(creds)

	assert.Equal(t, first, second)
	assert.Equal(t, Credentials{Email: "bad", Password: "1"}, creds)
}

// Password length is counted in Unicode code points, not bytes or UTF-16 units.
func TestValidatePasswordCountsCodePoints(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		password string
		short    bool
	}{
		{"🔑🔑🔑", true},
		{"🔑🔑🔑🔑🔑", true},
		{"🔑🔑🔑🔑🔑🔑", false},
		{"ééééé", true},
		{"éééééé", false},
		// each byte of an invalid sequence counts as one code point
		{"\xff\xff\xff\xff\xff\xff", false},
		{"\xff\xff\xff\xff\xff", true},
	}

	for _, tc := range cases {
		errs := v.Validate(Credentials{Email: "a@b.com", Password: tc.password})
		assert.Equal(t, tc.short, errs.Has(FieldPassword), "%q", tc.password)
	}
}

// Email addresses follow the RFC 5322 grammar of the validator's email tag,
// which admits quoted local parts.
func TestValidateEmailGrammar(t *testing.T) {
	v := NewValidator()

	for _, email := range []string{`"quoted"@example.com`, "o'brien@example.com", "user%tag@example.com"} {
		assert.False(t, v.Validate(Credentials{Email: email, Password: "secret1"}).Has(FieldEmail), "%q", email)
	}
}
