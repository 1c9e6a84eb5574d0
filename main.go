package main

import (
	"context"
	"embed"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"

	"authforms/internal/app"
	"authforms/internal/auth"
	"authforms/internal/config"
	"authforms/internal/secrets"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		fiberlog.Warn("no .env file loaded: ", err)
	}

	s := secrets.New()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		fiberlog.Fatal(err)
	}

	sessions := auth.NewCognitoSessions(cognito.NewFromConfig(awsCfg), s.CognitoClientId())
	accounts := auth.NewRegistrationEndpoint(s.BackendUrl(), config.RegisterTimeout())
	fiberlog.Info("registration endpoint: ", accounts.URL())

	cfg := config.NewConfigFromEnvironment(s, sessions, accounts, staticFS)

	a := app.New(&cfg)

	fiberlog.Fatal(a.Listen(cfg.Host + ":" + cfg.Port))
}
