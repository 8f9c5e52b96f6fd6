package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/mathkeeper/calc/internal/history"
	"github.com/mathkeeper/calc/internal/router"
	"github.com/mathkeeper/calc/internal/server"
	pkgserver "github.com/mathkeeper/calc/pkg/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, healthChecker, cleanup, err := buildHistoryStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to set up history store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	s := server.New(cfg, healthChecker)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "calc API is running")
	})

	evalRouter := router.NewEvalRouter(s.Echo, store)
	evalRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func buildHistoryStore(ctx context.Context, cfg *server.Config) (history.Store, pkgserver.HealthChecker, func(), error) {
	if cfg.HistoryDSN == "" {
		slog.Info("HISTORY_DSN not set, using in-memory history store")
		return history.NewMemStore(), pkgserver.NewOkHealthChecker(), func() {}, nil
	}

	pool, err := history.NewConnectionPool(ctx, history.PoolConfig{ConnStr: cfg.HistoryDSN})
	if err != nil {
		return nil, nil, nil, err
	}

	store := history.NewPGStore(pool)
	if err := store.Schema(ctx); err != nil {
		pool.Close()
		return nil, nil, nil, err
	}

	return store, pkgserver.NewPingHealthChecker(pool.Ping), pool.Close, nil
}
