package forms

import (
	"errors"
	"fmt"
)

type Variant string

const (
	VariantDefault     Variant = ""
	VariantDestructive Variant = "destructive"
)

// Notification is a transient toast shown to the user.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

func (n Notification) Destructive() bool {
	return n.Variant == VariantDestructive
}

var (
	LoginRejected = Notification{
		Title:       "Error",
		Description: "Invalid email or password",
		Variant:     VariantDestructive,
	}
	AccountCreated = Notification{
		Title:       "Success",
		Description: "Account created successfully",
	}
	AccountNotCreated = Notification{
		Title:       "Error",
		Description: "Failed to create account",
		Variant:     VariantDestructive,
	}
	SubmissionPending = Notification{
		Title:       "Please wait",
		Description: "Your previous submission is still being processed",
	}
)

type OutcomeKind int

const (
	// OutcomeNone means no request was sent.
	OutcomeNone OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return "none"
	}
}

// Outcome is the terminal result of one submission attempt.
type Outcome struct {
	Kind         OutcomeKind
	Redirect     string
	Notification *Notification
	// Err is the cause of a failure. It is for logs only and never shown to the user.
	Err error
}

func Success(redirect string, notification *Notification) Outcome {
	return Outcome{Kind: OutcomeSuccess, Redirect: redirect, Notification: notification}
}

func Failure(notification Notification, err error) Outcome {
	return Outcome{Kind: OutcomeFailure, Notification: &notification, Err: err}
}

var ErrSubmissionInFlight = errors.New("forms: submission already in flight")

// RejectedError carries the error indicator reported by a SessionEstablisher.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "forms: sign-in rejected: " + e.Reason
}

// StatusError is a non-2xx answer from the registration endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("forms: registration endpoint responded %d", e.Code)
}

// NetworkError means the registration request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "forms: registration request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
