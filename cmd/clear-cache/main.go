package main

import (
	"context"
	"os"

	"github.com/hferrand/canto-field-go/internal/cache"
	"github.com/hferrand/canto-field-go/internal/config"
	"github.com/hferrand/canto-field-go/internal/logger"
)

// Deactivation hook: drops every cache entry under the reserved namespace
// and leaves everything else in redis alone.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	if cfg.RedisAddr == "" {
		logger.Info(ctx, "Redis not configured — nothing to clear")
		return
	}

	ca := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
	deleted, err := ca.InvalidateAll(ctx)
	if err != nil {
		logger.Errorf(ctx, "❌  Cache invalidation failed: %v", err)
		os.Exit(1)
	}

	logger.Infof(ctx, "✅  Removed %d cached entries", deleted)
}
