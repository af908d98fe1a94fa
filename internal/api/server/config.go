package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/pagekit/pkg/config/env"
	"github.com/DjordjeVuckovic/pagekit/pkg/utils"
)

const (
	DefaultCatalogPath  = "cmd/page_api/catalog.yaml"
	DefaultMaxPageLimit = 500
)

type Config struct {
	Port         string
	UseHttp2     bool
	CorsOrigins  []string
	CatalogPath  string
	MaxPageLimit int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/page_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2Str := os.Getenv("USE_HTTP2")
	useHttp2 := useHttp2Str == "true"

	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitTrimmed(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxLimit, err := env.Int("MAX_PAGE_LIMIT", DefaultMaxPageLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_PAGE_LIMIT: %w", err)
	}
	if maxLimit < 1 {
		return nil, errors.New("MAX_PAGE_LIMIT must be positive")
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		CatalogPath:  env.String("CATALOG_PATH", DefaultCatalogPath),
		MaxPageLimit: maxLimit,
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
