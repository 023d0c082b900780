// Package bootstrap loads configuration and opens shared resources for every CLI command.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/gearguard/gearguard/internal/infrastructure/config"
	"github.com/gearguard/gearguard/internal/infrastructure/database"
	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// Init loads config for env, sets up logging and the business timezone and
// opens the database. Callers must defer database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = GinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == "debug"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// GinMode maps an environment name onto a gin mode.
func GinMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
