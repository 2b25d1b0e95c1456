package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/announcement"
	applicationrepo "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/application"
	connectionrepo "github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/connection"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/roommatch-backend/internal/adapter/redis"
	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/service/application"
	"github.com/heartmarshall/roommatch-backend/internal/service/connection"
	"github.com/heartmarshall/roommatch-backend/internal/service/notification"
	"github.com/heartmarshall/roommatch-backend/internal/service/recommendation"
)

// infra holds the storage handles and services shared by the server and the
// batch commands.
type infra struct {
	pool *pgxpool.Pool
	// bus is nil when notifications are disabled.
	bus *redis.Bus

	dispatcher      *notification.Dispatcher
	recommendations *recommendation.Service
	connections     *connection.Service
	applications    *application.Service
}

// buildInfra connects to PostgreSQL and, when notifications are enabled, to
// Redis, then wires the repositories into the services. Call close when done.
func buildInfra(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	in := &infra{pool: pool}

	if cfg.Notifications.Enabled {
		var rdb *goredis.Client
		rdb, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		in.bus = redis.NewBus(rdb, cfg.Redis.Channel, logger)
		in.dispatcher = notification.NewDispatcher(logger, in.bus, cfg.Notifications)
	} else {
		logger.Warn("notifications disabled: events will be dropped")
		in.dispatcher = notification.NewDispatcher(logger, nil, cfg.Notifications)
	}

	txm := postgres.NewTxManager(pool)
	profiles := profile.New(pool)
	announcements := announcement.New(pool)
	applications := applicationrepo.New(pool)
	requests := connectionrepo.New(pool)

	in.recommendations = recommendation.NewService(logger, announcements, profiles, applications, in.dispatcher, cfg.Recommendation)
	in.connections = connection.NewService(logger, requests, profiles, in.dispatcher, txm)
	in.applications = application.NewService(logger, applications, announcements, profiles, in.dispatcher, txm)

	return in, nil
}

func (in *infra) close(logger *slog.Logger) {
	if err := in.bus.Close(); err != nil {
		logger.Warn("close redis", slog.String("error", err.Error()))
	}
	in.pool.Close()
}
