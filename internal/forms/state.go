package forms

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the transient state of one form instance. Transitions return a new
// value and never mutate the receiver.
type State struct {
	Values Credentials
	Errors ErrorSet
	Status Status
}

func NewState(values Credentials) State {
	return State{Values: values, Status: StatusIdle}
}

// Submit applies a submission attempt with the errors produced by the Validator.
// send reports whether the external call should be made.
func (s State) Submit(values Credentials, errs ErrorSet) (next State, send bool) {
	if s.Status == StatusSubmitting {
		return s, false
	}

	if len(errs) > 0 {
		return State{Values: values, Errors: errs, Status: StatusIdle}, false
	}

	return State{Values: values, Status: StatusSubmitting}, true
}

// Resolve applies the outcome of the external call. The password is dropped
// whatever the result.
func (s State) Resolve(outcome Outcome) State {
	if s.Status != StatusSubmitting {
		return s
	}

	next := State{Values: Credentials{Email: s.Values.Email}, Status: StatusFailed}
	if outcome.Kind == OutcomeSuccess {
		next.Status = StatusSucceeded
	}
	return next
}
