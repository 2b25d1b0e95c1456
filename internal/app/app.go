package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/roommatch-backend/internal/adapter/redis"
	"github.com/heartmarshall/roommatch-backend/internal/auth"
	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/roommatch-backend/internal/transport/rest"
	"github.com/heartmarshall/roommatch-backend/internal/transport/ws"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and Redis, starts the notification forwarder and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	in, err := buildInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer in.close(logger)

	g, gctx := errgroup.WithContext(ctx)

	var wsHandler http.Handler
	if in.bus != nil {
		hub := ws.NewHub(redis.Encode, logger)
		defer hub.CloseAll()

		if err := in.bus.StartForwarder(gctx, hub.Deliver); err != nil {
			return fmt.Errorf("start notification forwarder: %w", err)
		}
		wsHandler = ws.NewHandler(hub, ws.OptionsFromConfig(cfg.Notifications), logger)
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL,
		auth.WithRoleFilter(cfg.Auth.IsRoleAllowed),
	)

	deps := []rest.Dependency{{Name: "database", Pinger: in.pool}}
	if in.bus != nil {
		deps = append(deps, rest.Dependency{Name: "redis", Pinger: in.bus})
	}

	router := rest.NewRouter(rest.RouterDeps{
		Logger:          logger,
		CORS:            cfg.CORS,
		RateLimit:       cfg.RateLimit,
		Auth:            middleware.Auth(jwtMgr),
		Health:          rest.NewHealthHandler(Version, deps...),
		Recommendations: rest.NewRecommendationHandler(in.recommendations, logger),
		Connections:     rest.NewConnectionHandler(in.connections, logger),
		Applications:    rest.NewApplicationHandler(in.applications, logger),
		Notifications:   wsHandler,
		Metrics:         promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NotifyRecentMatches publishes match notifications for announcements created
// within lookback (the configured window when lookback is zero) that have not
// been fanned out yet. It is the
// body of the notify-matches command.
func NotifyRecentMatches(ctx context.Context, lookback time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	in, err := buildInfra(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer in.close(logger)

	sent, err := in.recommendations.NotifyRecentMatches(ctx, lookback)
	if err != nil {
		return fmt.Errorf("notify recent matches: %w", err)
	}

	logger.Info("match notifications sent",
		slog.Int("notifications", sent),
		slog.Duration("lookback", lookback),
	)
	return nil
}
