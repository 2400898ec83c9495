package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/AdwaitMishr/vitmart/internal/auth"
	"github.com/AdwaitMishr/vitmart/internal/catalog"
	"github.com/AdwaitMishr/vitmart/internal/config"
	"github.com/AdwaitMishr/vitmart/internal/httpapi"
	"github.com/AdwaitMishr/vitmart/internal/logger"
	"github.com/AdwaitMishr/vitmart/internal/port"
	"github.com/AdwaitMishr/vitmart/internal/repository"
	"github.com/AdwaitMishr/vitmart/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("vitmart-api", cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, cleanup, err := newKV(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize storage backend")
	}
	defer cleanup()

	cat, err := catalog.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog fixtures")
	}

	var userOpts []store.UserOption
	if cfg.AppEnv == "dev" {
		userOpts = append(userOpts, store.WithDemoData())
	}

	cartStore := store.NewCart()
	userStore := store.NewUser(kv, log, userOpts...)
	userStore.Restore(ctx)

	checkout := store.NewCheckout(cartStore, userStore, cat, log, cfg.PaymentDelay)

	sessions := auth.NewSessionManager(auth.SessionConfig{
		Issuer: cfg.SessionIssuer,
		Secret: cfg.SessionSecret,
		TTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
	})

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cart:     cartStore,
		User:     userStore,
		Checkout: checkout,
		Catalog:  cat,
		Sessions: sessions,
		Log:      log,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("http server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown error")
	}
}

func newKV(ctx context.Context, cfg config.Config) (port.KV, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return repository.NewMemoryKV(), func() {}, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		return repository.NewPostgresKV(pool), pool.Close, nil

	case "redis":
		kv, err := repository.NewRedisKV(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewRedisKV: %w", err)
		}
		return kv, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
