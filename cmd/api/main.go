package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "stayquery/internal/adapters/http_server"
	"stayquery/internal/adapters/liteapi"
	"stayquery/internal/adapters/observability"
	redisad "stayquery/internal/adapters/redis"
	"stayquery/internal/app"
	"stayquery/internal/domain"
	"stayquery/internal/geo"
	"stayquery/internal/parser"
	"stayquery/internal/shared"
	mysqlrepo "stayquery/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api", cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// reference data: database when configured, built-in tables otherwise
	places, prices := geo.Default(), app.DefaultPriceTable()
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")

		places, prices, err = app.NewReferenceService(mysqlrepo.New(db)).Load(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("loading reference data failed")
		}
	}
	log.Info().Int("destinations", places.Len()).Msg("gazetteer ready")

	// optional cache
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; search cache disabled")
		} else {
			cache = rc
			defer rc.Close()
		}
	}

	provider := liteapi.New(liteapi.Config{
		BaseURL: cfg.LiteAPIBase,
		APIKey:  cfg.LiteAPIKey,
		RPS:     cfg.LiteAPIRPS,
		Timeout: cfg.LiteAPITimeout,
	})

	search := app.NewSearchService(provider, places, prices, cache, cfg.CacheTTL)
	q := app.NewQueryService(parser.New(places, time.Now), search)

	// http
	srv := server.New(cfg.RequestTimeout)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Bool("provider", provider.IsAvailable()).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
