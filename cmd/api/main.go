// @title                       Item Reviews API
// @version                     1.0
// @description                 Users review catalog items and comment on reviews. Writes require a bearer token.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/api"
	"github.com/reviewhub/item-reviews/internal/api/handler"
	"github.com/reviewhub/item-reviews/internal/core/ports"
	"github.com/reviewhub/item-reviews/internal/core/service"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db/redis"
	"github.com/reviewhub/item-reviews/internal/pkg/config"
	"github.com/reviewhub/item-reviews/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}

	var (
		cache ports.ItemCache
		rdb   *goredis.Client
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, serving items without cache")
		} else {
			cache = redis.NewItemCache(rdb, cfg.Redis.ItemTTL)
		}
	}

	health := map[string]handler.Pinger{"store": store.Ping}
	if rdb != nil {
		health["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	e := api.NewRouter(api.Dependencies{
		Auth:     service.NewAuthService(store.Users, tokens, log),
		Items:    service.NewItemService(store.Items, cache, log),
		Reviews:  service.NewReviewService(store.Reviews, store.Items, store.Users, log),
		Comments: service.NewCommentService(store.Comments, store.Reviews, store.Users, log),
		Tokens:   tokens,
		Health:   health,
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", store.Driver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	closeAll(shutdownCtx, log, store, rdb)
}

func closeAll(ctx context.Context, log zerolog.Logger, store *db.Store, rdb *goredis.Client) {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}
	if err := store.Close(ctx); err != nil {
		log.Error().Err(err).Msg("store close")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "item-reviews-api",
	})
}
