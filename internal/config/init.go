package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads .env and verifies the settings the service cannot run without.
// AUTH_INTROSPECT_URL is optional: when set, token validation is delegated
// to the remote identity provider instead of the local JWT validator.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "APP_PORT"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}
