package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"relief_ai/internal/adapters/gemini"
	server "relief_ai/internal/adapters/http_server"
	"relief_ai/internal/adapters/observability"
	redisad "relief_ai/internal/adapters/redis"
	"relief_ai/internal/app"
	"relief_ai/internal/domain"
	"relief_ai/internal/shared"
	mysqlrepo "relief_ai/internal/storage/mysql"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Without a key the gateway runs fallback-only, which is still a
	// working service.
	var gen domain.Generator
	if cfg.GeminiKey != "" {
		client, err := gemini.New(cfg.GeminiBase, cfg.GeminiModel, cfg.GeminiKey, cfg.GeminiRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Gemini client")
		}
		gen = client
	}

	gw := app.NewGateway(gen, log.Logger)
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	plans := app.NewPlanService(gw, repo, cache, log.Logger)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, G: gw, P: plans, PlanLimit: cfg.PlanLimit})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
