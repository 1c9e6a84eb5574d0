package forms

import (
	"context"

	"authforms/internal/constants"
)

// AccountCreator sends credentials to the registration endpoint and returns the
// HTTP status it answered with. An error means no response was received.
type AccountCreator interface {
	CreateAccount(ctx context.Context, creds Credentials) (int, error)
}

type RegisterFlow struct {
	validator *Validator
	accounts  AccountCreator
}

func NewRegisterFlow(validator *Validator, accounts AccountCreator) *RegisterFlow {
	return &RegisterFlow{validator: validator, accounts: accounts}
}

// Submit runs one registration attempt. Only the status code is inspected.
func (f *RegisterFlow) Submit(ctx context.Context, state State, creds Credentials) (State, Outcome) {
	next, send := state.Submit(creds, f.validator.Validate(creds))
	if !send {
		return next, Outcome{}
	}

	status, err := f.accounts.CreateAccount(ctx, creds)

	var outcome Outcome
	switch {
	case err != nil:
		outcome = Failure(AccountNotCreated, &NetworkError{Err: err})
	case status >= 200 && status < 300:
		created := AccountCreated
		outcome = Success(constants.LoginPath, &created)
	default:
		outcome = Failure(AccountNotCreated, &StatusError{Code: status})
	}

	return next.Resolve(outcome), outcome
}
