package migrate

import (
	"context"
	"fmt"

	"github.com/storecraft/backoffice-backend/pkg/config"
	"github.com/storecraft/backoffice-backend/pkg/db"
	"github.com/storecraft/backoffice-backend/pkg/logger"
)

// MaybeRunDev applies pending migrations at startup. It is a no-op outside
// the development environment or when STORECRAFT_AUTO_MIGRATE is off.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "dir": DefaultDir})
	logg.Info(ctx, "running goose migrations (dev auto-run)")

	if err := Run(ctx, sqlDB, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Info(ctx, "goose migrations completed")
	return nil
}
