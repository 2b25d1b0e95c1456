// Package notification fans typed domain events out to recipients. Delivery
// is best-effort: publishing never fails the operation that triggered it.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/domain"
	"github.com/heartmarshall/roommatch-backend/internal/metrics"
)

type publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Dispatcher publishes notifications through a circuit breaker.
type Dispatcher struct {
	pub     publisher
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
	enabled bool
	now     func() time.Time
	log     *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil pub or a disabled config turns
// every Publish into a logged no-op.
func NewDispatcher(log *slog.Logger, pub publisher, cfg config.NotificationsConfig) *Dispatcher {
	d := &Dispatcher{
		pub:     pub,
		timeout: cfg.PublishTimeout,
		enabled: cfg.Enabled && pub != nil,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log.With("service", "notification"),
	}

	threshold := cfg.BreakerFailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	d.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "notification-publisher",
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(int(to))
			d.log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return d
}

// Notify builds a notification for recipientID and publishes it.
func (d *Dispatcher) Notify(ctx context.Context, recipientID uuid.UUID, payload domain.NotificationPayload) {
	d.Publish(ctx, domain.NewNotification(recipientID, payload, d.now()))
}

// Publish hands n to the publisher. Failures are logged and counted, never
// returned. The publish outlives the caller's cancellation but is bounded by
// the configured timeout.
func (d *Dispatcher) Publish(ctx context.Context, n domain.Notification) {
	typ := n.Type.String()

	if !d.enabled {
		metrics.RecordNotification(typ, metrics.OutcomeDisabled)
		d.log.DebugContext(ctx, "notification dropped: dispatcher disabled",
			slog.String("type", typ),
			slog.String("recipient_id", n.RecipientID.String()),
		)
		return
	}

	pubCtx := context.WithoutCancel(ctx)
	if d.timeout > 0 {
		var cancel context.CancelFunc
		pubCtx, cancel = context.WithTimeout(pubCtx, d.timeout)
		defer cancel()
	}

	_, err := d.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, d.pub.Publish(pubCtx, n)
	})
	if err == nil {
		metrics.RecordNotification(typ, metrics.OutcomeSent)
		return
	}

	outcome := metrics.OutcomeFailed
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		outcome = metrics.OutcomeBreakerOpen
	}
	metrics.RecordNotification(typ, outcome)

	d.log.WarnContext(ctx, "notification publish failed",
		slog.String("type", typ),
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("outcome", outcome),
		slog.String("error", err.Error()),
	)
}
