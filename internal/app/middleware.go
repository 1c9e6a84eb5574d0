package app

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/session"

	"authforms/internal/constants"
)

func SetLoggedIn(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionStore.Get(c)
		if err != nil {
			return err
		}

		loggedIn := sess.Get(constants.LoggedInSessionKey) == "true"
		c.Locals(constants.LoggedInSessionKey, loggedIn)

		if email, ok := sess.Get(constants.EmailSessionKey).(string); ok {
			c.Locals(constants.EmailSessionKey, email)
		}

		return c.Next()
	}
}

func RequireLoggedIn(c *fiber.Ctx) error {
	loggedIn, _ := c.Locals(constants.LoggedInSessionKey).(bool)
	if !loggedIn {
		fiberlog.Debug("not logged in, redirecting to login")
		return redirect(c, constants.LoginPath)
	}

	return c.Next()
}

func RedirectInternalIfLoggedIn(c *fiber.Ctx) error {
	loggedIn, _ := c.Locals(constants.LoggedInSessionKey).(bool)
	if loggedIn {
		fiberlog.Debug("logged in, redirecting to dashboard")
		return redirect(c, constants.DashboardPath)
	}

	return c.Next()
}

// redirect navigates both plain browsers and htmx requests.
func redirect(c *fiber.Ctx, location string) error {
	c.Set("HX-Location", location)
	return c.Redirect(location, fiber.StatusFound)
}
