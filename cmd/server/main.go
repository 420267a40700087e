package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agendahub/internal/auth"
	"agendahub/internal/core"
	"agendahub/internal/handler"
	"agendahub/internal/middleware"
	"agendahub/internal/model"
	"agendahub/internal/store"
)

func main() {
	_ = godotenv.Load()

	log, err := newLogger(env("LOG_LEVEL", "info"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	port := env("PORT", "8080")

	st, cleanup, err := openStore(log)
	if err != nil {
		log.Fatal("store", zap.Error(err))
	}
	defer cleanup()

	c := core.New(st, log)
	if err := seedAdmin(context.Background(), c, log); err != nil {
		log.Fatal("seed admin", zap.Error(err))
	}

	h := handler.New(c, st, secret, log)
	rl := middleware.NewRateLimiter(5, 10)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      h.Router(rl),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	go func() {
		log.Info("listening", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// openStore picks Postgres when DATABASE_URL is set, otherwise falls back to
// the in-memory store (single-process reference setup).
func openStore(log *zap.Logger) (store.Store, func(), error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Warn("DATABASE_URL not set, using in-memory store")
		return store.NewMemory(), func() {}, nil
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Warn("migration file not found, skipping", zap.Error(err))
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Warn("migration", zap.Error(err))
	} else {
		log.Info("migration applied")
	}

	return store.NewPostgres(pool), pool.Close, nil
}

// seedAdmin bootstraps the platform admin account from the environment on
// first start; a no-op when the account already exists or the vars are unset.
func seedAdmin(ctx context.Context, c *core.Core, log *zap.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u, err := c.RegisterUser(ctx, core.RegisterParams{
		Name:         env("ADMIN_NAME", "Admin"),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, core.ErrBadRequest) {
			// already registered
			return nil
		}
		return err
	}
	log.Info("admin account seeded", zap.Int64("userId", u.ID))
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
