package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authforms/internal/constants"
)

type fakeSessions struct {
	result SignInResult
	err    error

	calls    int
	provider string
	creds    Credentials
	opts     SignInOptions
}

func (f *fakeSessions) SignIn(_ context.Context, provider string, creds Credentials, opts SignInOptions) (SignInResult, error) {
	f.calls++
	f.provider = provider
	f.creds = creds
	f.opts = opts
	return f.result, f.err
}

func TestLoginSkipsSignInOnInvalidInput(t *testing.T) {
	for _, creds := range []Credentials{
		{Email: "bad", Password: "123456"},
		{Email: "a@b.com", Password: "123"},
	} {
		sessions := &fakeSessions{}
		flow := NewLoginFlow(NewValidator(), sessions)

		state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), creds)

		assert.Equal(t, OutcomeNone, outcome.Kind)
		assert.Nil(t, outcome.Notification)
		assert.Len(t, state.Errors, 1)
		assert.Zero(t, sessions.calls)
	}
}

func TestLoginSuccess(t *testing.T) {
	sessions := &fakeSessions{}
	flow := NewLoginFlow(NewValidator(), sessions)
	creds := Credentials{Email: "a@b.com", Password: "secret1"}

	state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), creds)

	assert.Equal(t, 1, sessions.calls)
	assert.Equal(t, constants.CredentialsProvider, sessions.provider)
	assert.Equal(t, creds, sessions.creds)
	assert.False(t, sessions.opts.Redirect)

	assert.Equal(t, OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "/dashboard", outcome.Redirect)
	assert.Nil(t, outcome.Notification)
	assert.Equal(t, StatusSucceeded, state.Status)
}

func TestLoginRejected(t *testing.T) {
	sessions := &fakeSessions{result: SignInResult{Error: "CredentialsSignin"}}
	flow := NewLoginFlow(NewValidator(), sessions)

	state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), Credentials{Email: "a@b.com", Password: "secret1"})

	assert.Equal(t, 1, sessions.calls)
	assert.Equal(t, OutcomeFailure, outcome.Kind)
	assert.Empty(t, outcome.Redirect)
	require.NotNil(t, outcome.Notification)
	assert.Equal(t, Notification{Title: "Error", Description: "Invalid email or password", Variant: VariantDestructive}, *outcome.Notification)

	var rejected *RejectedError
	require.ErrorAs(t, outcome.Err, &rejected)
	assert.Equal(t, "CredentialsSignin", rejected.Reason)

	assert.Equal(t, StatusFailed, state.Status)
	assert.Empty(t, state.Values.Password)
}

func TestLoginCapabilityFailure(t *testing.T) {
	boom := errors.New("cognito unavailable")
	flow := NewLoginFlow(NewValidator(), &fakeSessions{err: boom})

	_, outcome := flow.Submit(context.Background(), NewState(Credentials{}), Credentials{Email: "a@b.com", Password: "secret1"})

	assert.Equal(t, OutcomeFailure, outcome.Kind)
	assert.Equal(t, LoginRejected, *outcome.Notification)
	assert.ErrorIs(t, outcome.Err, boom)
}

func TestLoginRefusedWhileSubmitting(t *testing.T) {
	sessions := &fakeSessions{}
	flow := NewLoginFlow(NewValidator(), sessions)
	inFlight := State{Status: StatusSubmitting}

	state, outcome := flow.Submit(context.Background(), inFlight, Credentials{Email: "a@b.com", Password: "secret1"})

	assert.Equal(t, OutcomeNone, outcome.Kind)
	assert.Equal(t, inFlight, state)
	assert.Zero(t, sessions.calls)
}
