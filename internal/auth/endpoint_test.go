package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authforms/internal/forms"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        map[string]string
}

func newRegisterServer(t *testing.T, status int) (*httptest.Server, chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		captured <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message":"ignored"}`))
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestRegistrationEndpointPostsJSON(t *testing.T) {
	srv, captured := newRegisterServer(t, http.StatusOK)
	endpoint := NewRegistrationEndpoint(srv.URL+"/", time.Second)

	status, err := endpoint.CreateAccount(context.Background(), forms.Credentials{Email: "a@b.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	req := <-captured
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/register", req.path)
	assert.Equal(t, "application/json", req.contentType)
	assert.Equal(t, map[string]string{"email": "a@b.com", "password": "secret1"}, req.body)
}

func TestRegistrationEndpointReturnsFailureStatus(t *testing.T) {
	srv, _ := newRegisterServer(t, http.StatusBadRequest)

	status, err := NewRegistrationEndpoint(srv.URL, 0).CreateAccount(context.Background(), forms.Credentials{Email: "a@b.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRegistrationEndpointNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewRegistrationEndpoint(url, time.Second).CreateAccount(context.Background(), forms.Credentials{Email: "a@b.com", Password: "secret1"})

	assert.Error(t, err)
}

func TestRegistrationEndpointCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRegistrationEndpoint("http://127.0.0.1:1", 0).CreateAccount(ctx, forms.Credentials{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRegistrationEndpointURL(t *testing.T) {
	assert.Equal(t, "http://backend:3000/api/register", NewRegistrationEndpoint("http://backend:3000/", 0).URL())
	assert.Equal(t, "/api/register", NewRegistrationEndpoint("", 0).URL())
}
