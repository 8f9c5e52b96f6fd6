package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides the default path. A missing file is only an error in local
// mode; deployed environments configure through real env vars.
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" || env == "" {
			slog.Error("Failed to load .env file in local mode", "path", envPath, "error", err)
			return err
		}
		slog.Debug("Skipping .env file", "path", envPath)
	}

	return nil
}
