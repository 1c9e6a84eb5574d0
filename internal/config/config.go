package config

import (
	"embed"
	"os"
	"strconv"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"authforms/internal/constants"
	"authforms/internal/forms"
	"authforms/internal/secrets"
)

// Config is the global config for the app router. Host and Port are needed for absolute URL generation.
type Config struct {
	Env                 string
	Host                string
	Port                string
	Sessions            forms.SessionEstablisher
	Accounts            forms.AccountCreator
	CookieSecure        bool
	DatabaseUrl         string
	RedisUrl            string
	DisableLogColors    bool
	EnableStackTrace    bool
	RateLimitMax        int
	RateLimitExpiration time.Duration
	MetricsEnabled      bool
	StaticFS            embed.FS
}

func NewConfigFromEnvironment(s secrets.Secrets, sessions forms.SessionEstablisher, accounts forms.AccountCreator, staticFS embed.FS) Config {
	env := os.Getenv("ENV")

	return Config{
		Env:                 env,
		Host:                os.Getenv("HOST"),
		Port:                getEnv("PORT", "3000"),
		Sessions:            sessions,
		Accounts:            accounts,
		CookieSecure:        env == constants.EnvProduction,
		DatabaseUrl:         s.DatabaseUrl(),
		RedisUrl:            s.RedisUrl(),
		DisableLogColors:    env == constants.EnvProduction,
		EnableStackTrace:    env == constants.EnvDevelopment,
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 20),
		RateLimitExpiration: getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", false),
		StaticFS:            staticFS,
	}
}

// NewTestConfig uses in-memory session storage and the given collaborators.
func NewTestConfig(sessions forms.SessionEstablisher, accounts forms.AccountCreator) *Config {
	return &Config{
		Env:                 constants.EnvTest,
		Host:                "localhost",
		Port:                "3000",
		Sessions:            sessions,
		Accounts:            accounts,
		DisableLogColors:    true,
		RateLimitMax:        1000,
		RateLimitExpiration: time.Minute,
		MetricsEnabled:      true,
	}
}

// RegisterTimeout is the registration request timeout; 0 keeps the transport default.
func RegisterTimeout() time.Duration {
	return getEnvDuration("REGISTER_TIMEOUT", 0)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		fiberlog.Warnf("%s is not an integer, using %d", key, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		fiberlog.Warnf("%s is not a boolean, using %t", key, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		fiberlog.Warnf("%s is not a duration, using %s", key, fallback)
		return fallback
	}
	return d
}
