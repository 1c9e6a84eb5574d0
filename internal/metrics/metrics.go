package metrics

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"authforms/internal/forms"
)

const (
	LabelInvalid      = "invalid"
	LabelSuccess      = "success"
	LabelFailure      = "failure"
	LabelNetworkError = "network_error"
	LabelInFlight     = "in_flight"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authforms_login_attempts_total",
		Help: "Total number of login form submissions by outcome.",
	}, []string{"outcome"})
	RegistrationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authforms_registration_attempts_total",
		Help: "Total number of registration form submissions by outcome.",
	}, []string{"outcome"})
)

func ObserveLogin(outcome forms.Outcome) {
	LoginAttemptsTotal.WithLabelValues(OutcomeLabel(outcome)).Inc()
}

func ObserveRegistration(outcome forms.Outcome) {
	RegistrationAttemptsTotal.WithLabelValues(OutcomeLabel(outcome)).Inc()
}

func OutcomeLabel(outcome forms.Outcome) string {
	switch outcome.Kind {
	case forms.OutcomeSuccess:
		return LabelSuccess
	case forms.OutcomeFailure:
		var netErr *forms.NetworkError
		if errors.As(outcome.Err, &netErr) {
			return LabelNetworkError
		}
		return LabelFailure
	default:
		return LabelInvalid
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
