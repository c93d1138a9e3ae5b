// Package db opens the repository set selected by STORE_DRIVER.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reviewhub/item-reviews/internal/core/ports"
	"github.com/reviewhub/item-reviews/internal/infrastructure/db/memory"
	mongostore "github.com/reviewhub/item-reviews/internal/infrastructure/db/mongo"
	pgstore "github.com/reviewhub/item-reviews/internal/infrastructure/db/postgres"
	"github.com/reviewhub/item-reviews/internal/pkg/config"
)

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Driver   string
	Users    ports.UserRepository
	Items    ports.ItemRepository
	Reviews  ports.ReviewRepository
	Comments ports.CommentRepository

	// Ping reports backend reachability for readiness checks.
	Ping func(ctx context.Context) error
	// Close releases the backend connection.
	Close func(ctx context.Context) error
}

// Open connects to the configured backend and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMongo:
		return openMongo(ctx, cfg, log)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverMemory:
		log.Warn().Msg("using in-memory store, data will not survive a restart")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// NewMemory returns a Store backed by process memory.
func NewMemory() *Store {
	mem := memory.New()
	noop := func(context.Context) error { return nil }
	return &Store{
		Driver:   config.DriverMemory,
		Users:    mem.Users(),
		Items:    mem.Items(),
		Reviews:  mem.Reviews(),
		Comments: mem.Comments(),
		Ping:     noop,
		Close:    noop,
	}
}

func openMongo(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	client, database, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, err
	}
	if err := mongostore.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	return &Store{
		Driver:   config.DriverMongo,
		Users:    mongostore.NewUserRepository(database),
		Items:    mongostore.NewItemRepository(database),
		Reviews:  mongostore.NewReviewRepository(database),
		Comments: mongostore.NewCommentRepository(database),
		Ping:     func(ctx context.Context) error { return client.Ping(ctx, nil) },
		Close:    client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	sqlDB, err := pgstore.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}
	if err := pgstore.Migrate(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info().Msg("connected to PostgreSQL, migrations applied")

	return &Store{
		Driver:   config.DriverPostgres,
		Users:    pgstore.NewUserRepository(sqlDB),
		Items:    pgstore.NewItemRepository(sqlDB),
		Reviews:  pgstore.NewReviewRepository(sqlDB),
		Comments: pgstore.NewCommentRepository(sqlDB),
		Ping:     sqlDB.PingContext,
		Close:    func(context.Context) error { return sqlDB.Close() },
	}, nil
}
