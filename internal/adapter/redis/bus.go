// Package redis carries notifications between API instances over Redis
// pub/sub. Every instance publishes to one channel and forwards what it
// receives to its locally connected WebSocket clients.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// Bus publishes and subscribes to the notification channel.
type Bus struct {
	rdb     *goredis.Client
	channel string
	log     *slog.Logger
}

// NewClient opens a Redis client and verifies it with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// NewBus wraps an existing client. The channel defaults to "notifications".
func NewBus(rdb *goredis.Client, channel string, log *slog.Logger) *Bus {
	if channel == "" {
		channel = "notifications"
	}
	return &Bus{
		rdb:     rdb,
		channel: channel,
		log:     log.With("adapter", "redis_bus"),
	}
}

// Publish encodes n and publishes it to the channel.
func (b *Bus) Publish(ctx context.Context, n domain.Notification) error {
	if b == nil || b.rdb == nil {
		return errors.New("redis bus not initialized")
	}
	raw, err := Encode(n)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// StartForwarder subscribes to the channel and calls onMsg for every decoded
// notification until ctx is done. It returns once the subscription is
// confirmed; forwarding runs in its own goroutine.
func (b *Bus) StartForwarder(ctx context.Context, onMsg func(domain.Notification)) error {
	if b == nil || b.rdb == nil {
		return errors.New("redis bus not initialized")
	}
	if onMsg == nil {
		return errors.New("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					return
				}
				n, err := Decode([]byte(m.Payload))
				if err != nil {
					b.log.Warn("bad notification payload", slog.String("error", err.Error()))
					continue
				}
				onMsg(n)
			}
		}
	}()

	return nil
}

// Ping reports whether Redis is reachable.
func (b *Bus) Ping(ctx context.Context) error {
	return b.rdb.Ping(ctx).Err()
}

// Close closes the underlying client.
func (b *Bus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
