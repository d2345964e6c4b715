// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// This service has no caches to warm or templates to load; it only
// records the effective public configuration for operators.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("huddle starting",
		zap.String("base_url", appCfg.BaseURL),
		zap.Strings("allowed_origins", appCfg.AllowedOrigins),
		zap.Duration("token_expiry", appCfg.TokenExpiry))
	return nil
}
