package secrets

import (
	"os"
)

type Secrets interface {
	DatabaseUrl() string
	RedisUrl() string
	CognitoClientId() string
	BackendUrl() string
}

// New reads secrets from the environment. DATABASE_URL is swapped for
// TEST_DATABASE_URL when ENV is test.
func New() Secrets {
	dbUrlKey := "DATABASE_URL"
	if os.Getenv("ENV") == "test" {
		dbUrlKey = "TEST_DATABASE_URL"
	}

	return &secrets{
		databaseUrl:     os.Getenv(dbUrlKey),
		redisUrl:        os.Getenv("REDIS_URL"),
		cognitoClientId: os.Getenv("COGNITO_CLIENT_ID"),
		backendUrl:      os.Getenv("BACKEND_URL"),
	}
}

type secrets struct {
	databaseUrl     string
	redisUrl        string
	cognitoClientId string
	backendUrl      string
}

func (s secrets) DatabaseUrl() string {
	return s.databaseUrl
}

func (s secrets) RedisUrl() string {
	return s.redisUrl
}

func (s secrets) CognitoClientId() string {
	return s.cognitoClientId
}

func (s secrets) BackendUrl() string {
	return s.backendUrl
}
