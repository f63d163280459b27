package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hferrand/canto-field-go/internal/cache"
	"github.com/hferrand/canto-field-go/internal/canto"
	"github.com/hferrand/canto-field-go/internal/config"
	"github.com/hferrand/canto-field-go/internal/field"
	"github.com/hferrand/canto-field-go/internal/formatter"
	"github.com/hferrand/canto-field-go/internal/handler/api"
	"github.com/hferrand/canto-field-go/internal/logger"
	cMiddleware "github.com/hferrand/canto-field-go/internal/middleware"
	"github.com/hferrand/canto-field-go/internal/port"
	"github.com/hferrand/canto-field-go/internal/proxy"
	"github.com/hferrand/canto-field-go/internal/renderer"
	"github.com/hferrand/canto-field-go/internal/resolver"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	cantoCfg := canto.Config{
		Domain:   cfg.CantoDomain,
		AppToken: cfg.CantoAppToken,
		Timeout:  cfg.HTTPTimeout,
	}
	if !cantoCfg.IsConfigured() {
		logger.Warn(ctx, "⚠️  CANTO_DOMAIN / CANTO_APP_TOKEN not set — resolution will report a configuration error")
	}

	client := canto.NewClient(cantoCfg, ca)
	fmtr := formatter.New(cantoCfg, proxy.NewThumbnail("/thumbnail"))
	res := resolver.New(client, fmtr)
	fld := field.New(res, cantoCfg)
	rend := renderer.NewHTTPRenderer(ca)

	r := initRouter(ctx, cfg.JWTPublicKey)

	r.Get("/assets/search", api.SearchAssetsHandler(client, fmtr, res))
	r.With(cMiddleware.WithAssetID()).
		Get("/assets/{id}", api.GetAssetHandler(rend, res))
	r.Post("/resolve", api.ResolveHandler(fld))
	r.Get("/tree", api.TreeHandler(client))
	r.With(cMiddleware.WithAssetID()).
		Get("/albums/{id}/assets", api.AlbumAssetsHandler(client, fmtr))
	r.With(cMiddleware.WithAssetID()).
		Get("/thumbnail/{scheme}/{id}", api.ThumbnailHandler(client))
	r.Post("/cache/clear", api.ClearCacheHandler(ca))

	listenRouter(ctx, r, cfg)
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithRequestID())
	r.Use(cMiddleware.WithDSTAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}
