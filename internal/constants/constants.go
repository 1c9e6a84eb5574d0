package constants

const (
	EnvDevelopment      = "development"
	EnvProduction       = "production"
	EnvTest             = "test"
	CsrfInputName       = "_csrf"
	CsrfCookieName      = "authforms_csrf"
	CsrfHeaderName      = "X-CSRF-Token"
	CsrfTokenContextKey = "csrf.token"
	SessionCookieName   = "authforms_session_id"
	LoggedInSessionKey  = "auth.logged_in"
	EmailSessionKey     = "auth.email"
	FlashContextKey     = "flash"
	FlashTitleKey       = "flash.title"
	FlashDescriptionKey = "flash.description"
	FlashVariantKey     = "flash.variant"
)

// Routes and navigation targets.
const (
	RootPath             = "/"
	LoginPath            = "/login"
	LogoutPath           = "/logout"
	RegisterPath         = "/register"
	DashboardPath        = "/dashboard"
	MetricsPath          = "/metrics"
	RegisterEndpointPath = "/api/register"
)

// CredentialsProvider is the credential scheme passed to the session establishment capability.
const CredentialsProvider = "credentials"
