package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"authforms/internal/forms"
)

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, LabelInvalid, OutcomeLabel(forms.Outcome{}))
	assert.Equal(t, LabelSuccess, OutcomeLabel(forms.Success("/dashboard", nil)))
	assert.Equal(t, LabelFailure, OutcomeLabel(forms.Failure(forms.LoginRejected, &forms.RejectedError{Reason: "CredentialsSignin"})))
	assert.Equal(t, LabelFailure, OutcomeLabel(forms.Failure(forms.AccountNotCreated, &forms.StatusError{Code: 400})))
	assert.Equal(t, LabelNetworkError, OutcomeLabel(forms.Failure(forms.AccountNotCreated, &forms.NetworkError{Err: errors.New("refused")})))
}

func TestObserveRegistration(t *testing.T) {
	before := testutil.ToFloat64(RegistrationAttemptsTotal.WithLabelValues(LabelSuccess))

	ObserveRegistration(forms.Success("/login", &forms.AccountCreated))

	assert.Equal(t, before+1, testutil.ToFloat64(RegistrationAttemptsTotal.WithLabelValues(LabelSuccess)))
}
