package forms

import (
	"context"

	"authforms/internal/constants"
)

type SignInOptions struct {
	// Redirect asks the capability to navigate on its own. The login flow always
	// passes false and navigates itself.
	Redirect bool
}

// SignInResult is what a SessionEstablisher reports for credentials it could
// evaluate. A non-empty Error is the rejection indicator.
type SignInResult struct {
	Error string
}

// SessionEstablisher verifies credentials and issues a session. Rejected
// credentials are reported through SignInResult.Error; the returned error is
// reserved for failures of the capability itself.
type SessionEstablisher interface {
	SignIn(ctx context.Context, provider string, creds Credentials, opts SignInOptions) (SignInResult, error)
}

type LoginFlow struct {
	validator *Validator
	sessions  SessionEstablisher
}

func NewLoginFlow(validator *Validator, sessions SessionEstablisher) *LoginFlow {
	return &LoginFlow{validator: validator, sessions: sessions}
}

// Submit runs one login attempt from the given state. The session capability is
// called at most once, and only when the credentials pass validation.
func (f *LoginFlow) Submit(ctx context.Context, state State, creds Credentials) (State, Outcome) {
	next, send := state.Submit(creds, f.validator.Validate(creds))
	if !send {
		return next, Outcome{}
	}

	result, err := f.sessions.SignIn(ctx, constants.CredentialsProvider, creds, SignInOptions{Redirect: false})

	var outcome Outcome
	switch {
	case err != nil:
		outcome = Failure(LoginRejected, err)
	case result.Error != "":
		outcome = Failure(LoginRejected, &RejectedError{Reason: result.Error})
	default:
		outcome = Success(constants.DashboardPath, nil)
	}

	return next.Resolve(outcome), outcome
}
