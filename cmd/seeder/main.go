package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stayquery/internal/adapters/observability"
	"stayquery/internal/app"
	"stayquery/internal/geo"
	"stayquery/internal/shared"
	mysqlrepo "stayquery/internal/storage/mysql"
)

// seeder loads the built-in Gazetteer and price table into MySQL.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "seeder", cfg.LogLevel)

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	if cfg.SeedWorkers <= 0 {
		cfg.SeedWorkers = 1
	}
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	ref := app.NewReferenceService(mysqlrepo.New(db))
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)

	// run acquires before launching the goroutine and releases inside it
	run := func(name string, job func() error) {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := job(); err != nil {
				failed.Add(1)
				log.Warn().Str("row", name).Err(err).Msg("seed failed")
			}
		}()
	}

	dests := geo.Destinations()
	for _, d := range dests {
		run("destination:"+d.Key, func() error { return ref.SeedDestination(ctx, d) })
	}
	prices := app.DefaultPriceTable().Entries()
	for city, base := range prices {
		run("price:"+city, func() error { return ref.SeedPrice(ctx, city, base) })
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Msg("seeding incomplete")
	}
	log.Info().Int("destinations", len(dests)).Int("prices", len(prices)).Msg("seeding completed")
}
