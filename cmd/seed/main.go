// Siembra el administrador inicial sin levantar el servidor HTTP.
// Útil para pipelines de despliegue: corre la migración y el seed y termina.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/pymesoft/gestion/internal/bootstrap"
	"github.com/pymesoft/gestion/internal/config"
	"github.com/pymesoft/gestion/internal/observability/logger"
	pgstore "github.com/pymesoft/gestion/internal/store/pg"
)

func main() {
	configPath := flag.String("config", os.Getenv("GESTION_CONFIG"), "ruta al YAML de configuración")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, ServiceName: "gestion-seed"})
	defer func() { _ = logger.Sync() }()
	log := logger.Named("seed")

	if cfg.Storage.Driver != "postgres" {
		log.Fatal("seed binary requires the postgres driver", logger.String("driver", cfg.Storage.Driver))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
	if err != nil {
		log.Fatal("postgres connect failed", logger.Err(err))
	}
	defer pool.Close()

	if err := pgstore.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("schema migration failed", logger.Err(err))
	}

	if err := bootstrap.SeedAdmin(ctx, pgstore.NewUserRepo(pool), cfg); err != nil {
		if errors.Is(err, bootstrap.ErrSeedIncomplete) {
			log.Fatal("set SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD before running the seed")
		}
		log.Fatal("seed failed", logger.Err(err))
	}

	log.Info("seed completed")
}
