package app

import (
	"errors"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"

	"authforms/internal/constants"
	"authforms/internal/forms"
	"authforms/internal/metrics"
	"authforms/internal/view"
	dashboardviews "authforms/views/dashboard"
	loginviews "authforms/views/login"
)

const (
	loginGateKey    = "login:"
	registerGateKey = "register:"
)

type LoginHandlers struct {
	renderer     *view.Renderer
	sessionStore *session.Store
	login        *forms.LoginFlow
	register     *forms.RegisterFlow
	gate         *forms.Gate
}

func (l *LoginHandlers) LoginForm(c *fiber.Ctx) error {
	state := forms.NewState(forms.Credentials{})
	return l.renderer.RenderComponent(c, fiber.StatusOK, loginviews.Login(state))
}

func (l *LoginHandlers) SubmitLogin(c *fiber.Ctx) error {
	var creds forms.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sess, err := l.sessionStore.Get(c)
	if err != nil {
		return err
	}

	release, ok := l.gate.Acquire(loginGateKey + sess.ID())
	if !ok {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LabelInFlight).Inc()
		return l.refuseInFlight(c, loginviews.Login(pendingState(creds)))
	}
	defer release()

	state, outcome := l.login.Submit(c.UserContext(), forms.NewState(forms.Credentials{}), creds)
	metrics.ObserveLogin(outcome)

	switch outcome.Kind {
	case forms.OutcomeNone:
		return l.renderer.RenderComponent(c, fiber.StatusUnprocessableEntity, loginviews.Login(state))
	case forms.OutcomeFailure:
		logFailure("login", state.Values.Email, outcome.Err)
		l.renderer.Notify(c, outcome.Notification)
		return l.renderer.RenderComponent(c, fiber.StatusUnauthorized, loginviews.Login(state))
	}

	// new session id on privilege change
	if err = sess.Reset(); err != nil {
		return err
	}
	sess.Set(constants.LoggedInSessionKey, "true")
	sess.Set(constants.EmailSessionKey, state.Values.Email)
	if err = sess.Save(); err != nil {
		return err
	}

	fiberlog.Info("signed in: ", state.Values.Email)
	return redirect(c, outcome.Redirect)
}

func (l *LoginHandlers) Logout(c *fiber.Ctx) error {
	sess, err := l.sessionStore.Get(c)
	if err != nil {
		return err
	}
	if err = sess.Destroy(); err != nil {
		return err
	}

	return redirect(c, constants.LoginPath)
}

func (l *LoginHandlers) Register(c *fiber.Ctx) error {
	state := forms.NewState(forms.Credentials{})
	return l.renderer.RenderComponent(c, fiber.StatusOK, loginviews.Register(state))
}

func (l *LoginHandlers) SubmitRegistration(c *fiber.Ctx) error {
	var creds forms.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sess, err := l.sessionStore.Get(c)
	if err != nil {
		return err
	}

	release, ok := l.gate.Acquire(registerGateKey + sess.ID())
	if !ok {
		metrics.RegistrationAttemptsTotal.WithLabelValues(metrics.LabelInFlight).Inc()
		return l.refuseInFlight(c, loginviews.Register(pendingState(creds)))
	}
	defer release()

	state, outcome := l.register.Submit(c.UserContext(), forms.NewState(forms.Credentials{}), creds)
	metrics.ObserveRegistration(outcome)

	switch outcome.Kind {
	case forms.OutcomeNone:
		return l.renderer.RenderComponent(c, fiber.StatusUnprocessableEntity, loginviews.Register(state))
	case forms.OutcomeFailure:
		logFailure("registration", state.Values.Email, outcome.Err)

		status := fiber.StatusUnprocessableEntity
		var netErr *forms.NetworkError
		if errors.As(outcome.Err, &netErr) {
			status = fiber.StatusBadGateway
		}

		l.renderer.Notify(c, outcome.Notification)
		return l.renderer.RenderComponent(c, status, loginviews.Register(state))
	}

	if outcome.Notification != nil {
		if err = l.renderer.Flash(c, *outcome.Notification); err != nil {
			return err
		}
	}

	fiberlog.Info("account created: ", state.Values.Email)
	return redirect(c, outcome.Redirect)
}

func (l *LoginHandlers) Dashboard(c *fiber.Ctx) error {
	email, _ := c.Locals(constants.EmailSessionKey).(string)
	return l.renderer.RenderComponent(c, fiber.StatusOK, dashboardviews.Index(email))
}

// refuseInFlight answers a duplicate submission with the same form and a
// notice, so the page stays usable while the first one resolves.
func (l *LoginHandlers) refuseInFlight(c *fiber.Ctx, page templ.Component) error {
	fiberlog.Debug(forms.ErrSubmissionInFlight.Error())
	l.renderer.Notify(c, &forms.SubmissionPending)
	return l.renderer.RenderComponent(c, fiber.StatusConflict, page)
}

func pendingState(creds forms.Credentials) forms.State {
	return forms.NewState(forms.Credentials{Email: creds.Email})
}

func logFailure(form, email string, err error) {
	var netErr *forms.NetworkError
	if errors.As(err, &netErr) {
		fiberlog.Errorw(form+" failed", "email", email, "error", err)
		return
	}
	fiberlog.Warnw(form+" failed", "email", email, "error", err)
}
