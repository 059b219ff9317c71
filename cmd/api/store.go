package main

import (
	"context"
	"fmt"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/rs/zerolog"

	"github.com/smartjob/job-board/internal/api/handler"
	"github.com/smartjob/job-board/internal/core/ports"
	mongostore "github.com/smartjob/job-board/internal/infrastructure/db/mongo"
	rediscache "github.com/smartjob/job-board/internal/infrastructure/db/redis"
	"github.com/smartjob/job-board/internal/infrastructure/db/sqlstore"
	"github.com/smartjob/job-board/internal/pkg/config"
)

// store bundles the repositories of one backend with its readiness probe and
// shutdown hook.
type store struct {
	identities ports.IdentityRepository
	skills     ports.SkillRepository
	jobs       ports.JobRepository
	profiles   ports.ProfileRepository
	pinger     handler.Pinger
	name       string
	close      gfshutdown.Operation
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

		return &store{
			identities: mongostore.NewIdentityRepository(db),
			skills:     mongostore.NewSkillRepository(db),
			jobs:       mongostore.NewJobRepository(db),
			profiles:   mongostore.NewProfileRepository(db),
			pinger:     mongostore.NewPinger(db),
			name:       "mongodb",
			close:      client.Disconnect,
		}, nil

	case config.StoreMySQL, config.StoreSQLite:
		db, err := sqlstore.Open(ctx, sqlstore.Config{
			Driver: cfg.Store.Driver,
			DSN:    cfg.Store.DSN,
			Debug:  cfg.LogLevel == "debug",
		})
		if err != nil {
			return nil, err
		}
		if err := sqlstore.Migrate(db); err != nil {
			_ = sqlstore.Close(db)
			return nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Msg("connected to SQL store")

		return &store{
			identities: sqlstore.NewIdentityRepository(db),
			skills:     sqlstore.NewSkillRepository(db),
			jobs:       sqlstore.NewJobRepository(db),
			profiles:   sqlstore.NewProfileRepository(db),
			pinger:     sqlstore.NewPinger(db),
			name:       cfg.Store.Driver,
			close:      func(context.Context) error { return sqlstore.Close(db) },
		}, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// skillCache is the optional Redis layer in front of the skill store. It returns
// nils when Redis is disabled or unreachable; the registry works without it.
func skillCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SkillCache, handler.Pinger, gfshutdown.Operation) {
	if !cfg.Redis.Enabled {
		return nil, nil, nil
	}

	client, err := rediscache.Connect(ctx, rediscache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("skill cache unavailable, continuing without it")
		return nil, nil, nil
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	closeFn := func(context.Context) error { return client.Close() }
	return rediscache.NewSkillCache(client, cfg.Redis.SkillTTL), rediscache.NewPinger(client), closeFn
}
