// Package main Pagekit Paging API
// @title Pagekit Paging API
// @version 1.0
// @description Reference API serving a catalog with offset and cursor pagination
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/pagekit/internal/api/docs"
	"github.com/DjordjeVuckovic/pagekit/internal/api/router"
	"github.com/DjordjeVuckovic/pagekit/internal/api/server"
	"github.com/DjordjeVuckovic/pagekit/internal/catalog"
	pkgserver "github.com/DjordjeVuckovic/pagekit/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	c, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "path", cfg.CatalogPath, "items", c.Len())

	var s *server.Server
	healthChecker := pkgserver.HealthCheckFunc(func(ctx context.Context) bool {
		return s.Context().Err() == nil && ctx.Err() == nil
	})

	s = server.New(cfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Pagekit Paging API is running")
	})

	router.NewItemsRouter(s.Echo, c, cfg.MaxPageLimit).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
