package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"

	"authforms/internal/config"
	"authforms/internal/constants"
	"authforms/internal/forms"
	"authforms/internal/metrics"
	"authforms/internal/view"
	errorviews "authforms/views/errors"
)

func New(config *config.Config) *fiber.App {
	fiberlog.Debugw("starting app", "env", config.Env, "host", config.Host, "port", config.Port)

	app := fiber.New(fiber.Config{
		AppName:      "AuthForms 0.1.0",
		ErrorHandler: errorHandler,
	})

	sessionStore := session.New(session.Config{
		Expiration:     24 * time.Hour * 30,
		KeyLookup:      "cookie:" + constants.SessionCookieName,
		CookieSecure:   config.CookieSecure,
		CookieHTTPOnly: true,
		Storage:        sessionStorage(config),
	})

	renderer := &view.Renderer{SessionStore: sessionStore}

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:        "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		DisableColors: config.DisableLogColors,
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: config.EnableStackTrace,
	}))
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(favicon.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(config.StaticFS),
		PathPrefix: "static",
	}))

	// Off unless METRICS_ENABLED is set.
	if config.MetricsEnabled {
		app.Get(constants.MetricsPath, metrics.Handler())
	}

	// Combine two CSRF extractors: use form field as default
	// so forms work without JS, with header as fallback.
	csrfFromForm := csrf.CsrfFromForm(constants.CsrfInputName)
	csrfFromHeader := csrf.CsrfFromHeader(constants.CsrfHeaderName)

	app.Use(csrf.New(csrf.Config{
		CookieSecure: config.CookieSecure,
		Session:      sessionStore,
		Extractor: func(c *fiber.Ctx) (string, error) {
			token, err := csrfFromForm(c)
			if err == nil {
				return token, nil
			}

			if errors.Is(err, csrf.ErrMissingForm) {
				return csrfFromHeader(c)
			}

			return "", err
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			fiberlog.Warn("CSRF error: ", err.Error())
			return renderer.RenderComponent(c, fiber.StatusForbidden,
				errorviews.GenericError(fiber.StatusForbidden, "Forbidden"))
		},
		ContextKey: constants.CsrfTokenContextKey,
		CookieName: constants.CsrfCookieName,
	}))

	app.Use(SetLoggedIn(sessionStore))

	validator := forms.NewValidator()
	login := LoginHandlers{
		renderer:     renderer,
		sessionStore: sessionStore,
		login:        forms.NewLoginFlow(validator, config.Sessions),
		register:     forms.NewRegisterFlow(validator, config.Accounts),
		gate:         forms.NewGate(),
	}

	limit := limiter.New(limiter.Config{
		Max:        config.RateLimitMax,
		Expiration: config.RateLimitExpiration,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests)
		},
	})

	app.Get(constants.RootPath, func(c *fiber.Ctx) error {
		return c.Redirect(constants.LoginPath, fiber.StatusFound)
	})
	app.Get(constants.LoginPath, RedirectInternalIfLoggedIn, login.LoginForm)
	app.Post(constants.LoginPath, limit, login.SubmitLogin)
	app.Post(constants.LogoutPath, login.Logout)

	app.Get(constants.RegisterPath, RedirectInternalIfLoggedIn, login.Register)
	app.Post(constants.RegisterPath, limit, login.SubmitRegistration)

	app.Get(constants.DashboardPath, RequireLoggedIn, login.Dashboard)

	return app
}

// sessionStorage prefers postgres, then redis. A nil storage makes the session
// store fall back to process memory.
func sessionStorage(config *config.Config) fiber.Storage {
	switch {
	case config.DatabaseUrl != "":
		fiberlog.Info("session storage: postgres")
		return postgres.New(postgres.Config{
			ConnectionURI: config.DatabaseUrl,
			Table:         "sessions",
		})
	case config.RedisUrl != "":
		fiberlog.Info("session storage: redis")
		return redis.New(redis.Config{
			URL: config.RedisUrl,
		})
	default:
		fiberlog.Info("session storage: memory")
		return nil
	}
}
