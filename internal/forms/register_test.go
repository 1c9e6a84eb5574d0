package forms

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	status int
	err    error

	calls int
	creds Credentials
}

func (f *fakeAccounts) CreateAccount(_ context.Context, creds Credentials) (int, error) {
	f.calls++
	f.creds = creds
	return f.status, f.err
}

var validCreds = Credentials{Email: "a@b.com", Password: "secret1"}

func TestRegisterSkipsRequestOnInvalidInput(t *testing.T) {
	accounts := &fakeAccounts{status: http.StatusOK}
	flow := NewRegisterFlow(NewValidator(), accounts)

	state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), Credentials{Email: "bad", Password: "123456"})

	assert.Equal(t, OutcomeNone, outcome.Kind)
	assert.Equal(t, ErrorSet{FieldEmail: MessageInvalidEmail}, state.Errors)
	assert.Zero(t, accounts.calls)
}

func TestRegisterSuccess(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		accounts := &fakeAccounts{status: status}
		flow := NewRegisterFlow(NewValidator(), accounts)

		state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), validCreds)

		assert.Equal(t, 1, accounts.calls)
		assert.Equal(t, validCreds, accounts.creds)
		assert.Equal(t, OutcomeSuccess, outcome.Kind)
		assert.Equal(t, "/login", outcome.Redirect)
		require.NotNil(t, outcome.Notification)
		assert.Equal(t, Notification{Title: "Success", Description: "Account created successfully"}, *outcome.Notification)
		assert.False(t, outcome.Notification.Destructive())
		assert.Equal(t, StatusSucceeded, state.Status)
	}
}

func TestRegisterRejectedStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusConflict, http.StatusInternalServerError, http.StatusFound} {
		accounts := &fakeAccounts{status: status}
		flow := NewRegisterFlow(NewValidator(), accounts)

		state, outcome := flow.Submit(context.Background(), NewState(Credentials{}), validCreds)

		assert.Equal(t, OutcomeFailure, outcome.Kind)
		assert.Empty(t, outcome.Redirect)
		require.NotNil(t, outcome.Notification)
		assert.Equal(t, Notification{Title: "Error", Description: "Failed to create account", Variant: VariantDestructive}, *outcome.Notification)

		var statusErr *StatusError
		require.ErrorAs(t, outcome.Err, &statusErr)
		assert.Equal(t, status, statusErr.Code)
		assert.Equal(t, StatusFailed, state.Status)
	}
}

func TestRegisterNetworkError(t *testing.T) {
	refused := errors.New("dial tcp: connection refused")
	flow := NewRegisterFlow(NewValidator(), &fakeAccounts{err: refused})

	_, outcome := flow.Submit(context.Background(), NewState(Credentials{}), validCreds)

	assert.Equal(t, OutcomeFailure, outcome.Kind)
	assert.Equal(t, AccountNotCreated, *outcome.Notification)

	var netErr *NetworkError
	require.ErrorAs(t, outcome.Err, &netErr)
	assert.ErrorIs(t, outcome.Err, refused)
}
