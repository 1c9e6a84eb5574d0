package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"authforms/internal/constants"
	"authforms/internal/forms"
)

// RegistrationEndpoint creates accounts by posting credentials as JSON to the
// backend's registration endpoint.
type RegistrationEndpoint struct {
	url     string
	timeout time.Duration
}

// NewRegistrationEndpoint targets baseURL + /api/register. A zero timeout leaves
// the transport defaults in place.
func NewRegistrationEndpoint(baseURL string, timeout time.Duration) *RegistrationEndpoint {
	return &RegistrationEndpoint{
		url:     strings.TrimRight(baseURL, "/") + constants.RegisterEndpointPath,
		timeout: timeout,
	}
}

func (e *RegistrationEndpoint) URL() string {
	return e.url
}

// CreateAccount returns the response status. The response body is ignored.
func (e *RegistrationEndpoint) CreateAccount(ctx context.Context, creds forms.Credentials) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	agent := fiber.Post(e.url)
	if e.timeout > 0 {
		agent.Timeout(e.timeout)
	}
	agent.JSON(creds)

	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, errors.Join(errs...)
	}

	return status, nil
}
