package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateSubmitWithErrorsStaysIdle(t *testing.T) {
	values := Credentials{Email: "bad", Password: "123456"}
	errs := ErrorSet{FieldEmail: MessageInvalidEmail}

	next, send := NewState(Credentials{}).Submit(values, errs)

	assert.False(t, send)
	assert.Equal(t, StatusIdle, next.Status)
	assert.Equal(t, errs, next.Errors)
	assert.Equal(t, values, next.Values)
}

func TestStateSubmitReplacesPreviousErrors(t *testing.T) {
	state := State{Errors: ErrorSet{FieldEmail: MessageInvalidEmail}}

	next, send := state.Submit(Credentials{Email: "a@b.com", Password: "secret1"}, nil)

	assert.True(t, send)
	assert.Equal(t, StatusSubmitting, next.Status)
	assert.Empty(t, next.Errors)
}

func TestStateRefusesResubmitWhileSubmitting(t *testing.T) {
	state := State{Values: Credentials{Email: "a@b.com", Password: "secret1"}, Status: StatusSubmitting}

	next, send := state.Submit(Credentials{Email: "other@b.com", Password: "secret2"}, nil)

	assert.False(t, send)
	assert.Equal(t, state, next)
}

func TestStateResolve(t *testing.T) {
	submitting := State{Values: Credentials{Email: "a@b.com", Password: "secret1"}, Status: StatusSubmitting}

	succeeded := submitting.Resolve(Success("/dashboard", nil))
	assert.Equal(t, StatusSucceeded, succeeded.Status)
	assert.Equal(t, "a@b.com", succeeded.Values.Email)
	assert.Empty(t, succeeded.Values.Password)

	failed := submitting.Resolve(Failure(LoginRejected, errors.New("boom")))
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Empty(t, failed.Values.Password)

	// a failed form accepts a new attempt
	_, send := failed.Submit(Credentials{Email: "a@b.com", Password: "secret1"}, nil)
	assert.True(t, send)
}

func TestStateResolveIgnoredWhenNotSubmitting(t *testing.T) {
	idle := NewState(Credentials{Email: "a@b.com"})

	assert.Equal(t, idle, idle.Resolve(Success("/dashboard", nil)))
}
