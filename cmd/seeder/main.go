package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"relief_ai/internal/adapters/observability"
	redisad "relief_ai/internal/adapters/redis"
	"relief_ai/internal/shared"
	mysqlrepo "relief_ai/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().Int("workers", cfg.Workers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	type task struct {
		name string
		run  func(context.Context) error
	}
	tasks := []task{
		{"inventory", func(ctx context.Context) error { return repo.UpsertInventory(ctx, shared.SeedInventory) }},
		{"demands", func(ctx context.Context) error { return repo.UpsertDemands(ctx, shared.SeedDemands) }},
		{"vehicles", func(ctx context.Context) error { return repo.UpsertVehicles(ctx, shared.SeedVehicles) }},
		{"storage", func(ctx context.Context) error { return repo.UpsertStorage(ctx, shared.SeedStorage) }},
		{"farmers", func(ctx context.Context) error { return repo.UpsertFarmers(ctx, shared.SeedFarmers) }},
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, t := range tasks {
		t := t

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := t.run(ctx); err != nil {
				log.Warn().Str("fixture", t.name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("fixture", t.name).Msg("seed ok")
		}()
	}

	wg.Wait()

	// Seeded tables invalidate every cached read.
	for _, key := range []string{"inventory", "demands", "logistics", "storage", "farmers", "dashboard:stats"} {
		if err := cache.Del(ctx, key); err != nil {
			log.Warn().Str("key", key).Err(err).Msg("cache invalidation failed")
		}
	}

	log.Info().Msg("seeding completed")
}
