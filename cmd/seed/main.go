package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/service"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db/redis"
	"github.com/reviewhub/item-reviews/internal/pkg/config"
	"github.com/reviewhub/item-reviews/internal/seed"
	"github.com/reviewhub/item-reviews/pkg/logger"
)

func main() {
	var (
		envFile  = flag.String("env", ".env", "Optional .env file to load before reading the environment")
		demo     = flag.Bool("demo", false, "Also create demo users alice123 and bob456 with one review each")
		password = flag.String("password", "", "Password for the demo users (required with -demo)")
	)
	flag.Parse()

	_ = godotenv.Load(*envFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := newLogger(cfg)

	store, err := db.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() { _ = store.Close(context.Background()) }()

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	seeder := &seed.Seeder{
		Items:   store.Items,
		Auth:    service.NewAuthService(store.Users, tokens, log),
		Reviews: service.NewReviewService(store.Reviews, store.Items, store.Users, log),
		Log:     log,
	}

	res, err := seeder.Run(ctx, seed.Options{Demo: *demo, Password: *password})
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		_ = store.Close(context.Background())
		os.Exit(1)
	}

	if cfg.Redis.Enabled && res.Items > 0 {
		rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, cached catalog not flushed")
		} else {
			if err := redis.NewItemCache(rdb, cfg.Redis.ItemTTL).Flush(ctx); err != nil {
				log.Warn().Err(err).Msg("item cache flush failed")
			}
			_ = rdb.Close()
		}
	}

	log.Info().Int("items", res.Items).Int("users", res.Users).Int("reviews", res.Reviews).Msg("seeding completed")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	return logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Service: "item-reviews-seed",
	})
}
