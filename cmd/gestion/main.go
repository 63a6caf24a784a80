// Binario principal: API HTTP de gestión (auth + correo transaccional).
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	rdb "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/pymesoft/gestion/internal/bootstrap"
	"github.com/pymesoft/gestion/internal/config"
	"github.com/pymesoft/gestion/internal/domain/repository"
	emailx "github.com/pymesoft/gestion/internal/email"
	httpx "github.com/pymesoft/gestion/internal/http"
	authctrl "github.com/pymesoft/gestion/internal/http/controllers/auth"
	emailctrl "github.com/pymesoft/gestion/internal/http/controllers/email"
	healthctrl "github.com/pymesoft/gestion/internal/http/controllers/health"
	"github.com/pymesoft/gestion/internal/http/router"
	authsvc "github.com/pymesoft/gestion/internal/http/services/auth"
	emailsvc "github.com/pymesoft/gestion/internal/http/services/email"
	jwtx "github.com/pymesoft/gestion/internal/jwt"
	"github.com/pymesoft/gestion/internal/observability/logger"
	"github.com/pymesoft/gestion/internal/rate"
	"github.com/pymesoft/gestion/internal/security/password"
	memstore "github.com/pymesoft/gestion/internal/store/memory"
	pgstore "github.com/pymesoft/gestion/internal/store/pg"
)

func main() {
	configPath := flag.String("config", os.Getenv("GESTION_CONFIG"), "ruta al YAML de configuración")
	flag.Parse()

	// .env es opcional; en prod la config viene del entorno real
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().Fatal("config load failed", logger.Err(err))
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.App.LogLevel,
		ServiceName: "gestion",
	})
	defer func() { _ = logger.Sync() }()
	log := logger.Named("main")

	if cfg.JWT.Secret == "" {
		log.Fatal("GESTION_JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Storage ───
	var (
		users  repository.UserRepository
		checks = map[string]healthctrl.ReadyCheck{}
	)
	switch cfg.Storage.Driver {
	case "memory":
		users = memstore.NewUserRepo()
		log.Warn("using in-memory storage, data will not survive restarts")
	case "postgres":
		pool, perr := newPgPool(ctx, cfg)
		if perr != nil {
			log.Fatal("postgres connect failed", logger.Err(perr))
		}
		defer pool.Close()
		if serr := pgstore.EnsureSchema(ctx, pool); serr != nil {
			log.Fatal("schema migration failed", logger.Err(serr))
		}
		users = pgstore.NewUserRepo(pool)
		checks["postgres"] = pool.Ping
	default:
		log.Fatal("unknown storage driver", logger.String("driver", cfg.Storage.Driver))
	}

	// ─── Seed del administrador inicial ───
	if err := bootstrap.SeedAdmin(ctx, users, cfg); err != nil {
		if errors.Is(err, bootstrap.ErrSeedIncomplete) {
			log.Warn("empty user directory and no seed admin configured; set SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD")
		} else {
			log.Fatal("seed admin failed", logger.Err(err))
		}
	}

	// ─── Rate limiting ───
	var authLimiter, emailLimiter rate.Limiter
	if cfg.Rate.Enabled {
		authWindow := config.RateWindow(cfg.Rate.Auth.Window, time.Minute)
		emailWindow := config.RateWindow(cfg.Rate.Email.Window, time.Minute)

		switch cfg.Cache.Kind {
		case "redis":
			client := rdb.NewClient(&rdb.Options{
				Addr: cfg.Cache.Redis.Addr,
				DB:   cfg.Cache.Redis.DB,
			})
			defer func() { _ = client.Close() }()
			prefix := cfg.Cache.Redis.Prefix
			if prefix == "" {
				prefix = "gestion:rl"
			}
			authLimiter = rate.NewRedisLimiter(client, prefix+":auth", cfg.Rate.Auth.Limit, authWindow)
			emailLimiter = rate.NewRedisLimiter(client, prefix+":email", cfg.Rate.Email.Limit, emailWindow)
			checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		default:
			authLimiter = rate.NewMemoryLimiter(cfg.Rate.Auth.Limit, authWindow)
			emailLimiter = rate.NewMemoryLimiter(cfg.Rate.Email.Limit, emailWindow)
		}
	}

	// ─── Emisor de tokens ───
	issuer := jwtx.NewIssuer(cfg.JWT.Issuer, []byte(cfg.JWT.Secret))
	issuer.AccessTTL = cfg.AccessTTL()

	// ─── Correo ───
	sender := emailx.FromConfig(emailx.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		TLSMode:  cfg.SMTP.TLSMode,
	})
	dispatcher := emailx.NewDispatcher(sender, cfg.SMTP.From, cfg.SMTP.FromName)

	// ─── Services y controllers ───
	authServices := authsvc.Services{
		Login:    authsvc.NewLoginService(authsvc.LoginDeps{Users: users, Issuer: issuer}),
		Register: authsvc.NewRegisterService(authsvc.RegisterDeps{Users: users, HashParams: password.Default}),
	}
	emailServices := emailsvc.Services{
		Send: emailsvc.NewSendService(dispatcher),
	}

	metricsHandler, err := httpx.RegisterMetrics(nil)
	if err != nil {
		log.Fatal("metrics registration failed", logger.Err(err))
	}

	handler := router.New(router.Deps{
		Auth:         authctrl.NewControllers(authServices),
		Email:        emailctrl.NewSendController(emailServices.Send),
		Health:       healthctrl.NewController(checks),
		AuthLimiter:  authLimiter,
		EmailLimiter: emailLimiter,
		Metrics:      metricsHandler,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server listening",
			logger.String("addr", cfg.Server.Addr),
			logger.String("storage", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server exited with error", logger.Err(err))
	}
	log.Info("bye")
}

func newPgPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		pc.MaxConns = int32(cfg.Storage.Postgres.MaxConns)
	}
	if d, err := time.ParseDuration(cfg.Storage.Postgres.ConnMaxLifetime); err == nil && d > 0 {
		pc.MaxConnLifetime = d
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
