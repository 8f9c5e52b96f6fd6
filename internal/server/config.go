package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mathkeeper/calc/pkg/config/env"
	"github.com/mathkeeper/calc/pkg/utils"
)

type Config struct {
	Port        string
	CorsOrigins []string

	// HistoryDSN is a postgres connection string; empty means the
	// in-memory history store.
	HistoryDSN string
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calcd/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrimmed(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		CorsOrigins: origins,
		HistoryDSN:  os.Getenv("HISTORY_DSN"),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
