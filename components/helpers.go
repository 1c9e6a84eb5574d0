package components

import (
	"context"
	"encoding/json"

	"authforms/internal/constants"
	"authforms/internal/forms"
)

func GetCsrfToken(ctx context.Context) string {
	if csrfToken, ok := ctx.Value(constants.CsrfTokenContextKey).(string); ok {
		return csrfToken
	}
	return ""
}

func GetLoggedIn(ctx context.Context) bool {
	if loggedIn, ok := ctx.Value(constants.LoggedInSessionKey).(bool); ok {
		return loggedIn
	}
	return false
}

// GetFlash returns the notification queued for this response, if any.
func GetFlash(ctx context.Context) *forms.Notification {
	if flash, ok := ctx.Value(constants.FlashContextKey).(*forms.Notification); ok {
		return flash
	}
	return nil
}

// CsrfHeaders is the hx-headers value that sends the CSRF token with every htmx request.
func CsrfHeaders(ctx context.Context) string {
	headers, _ := json.Marshal(map[string]string{constants.CsrfHeaderName: GetCsrfToken(ctx)})
	return string(headers)
}
