package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/roommatch-backend/internal/config"
)

// RateLimit limits each client IP to cfg.RequestsPerMinute requests in a
// sliding one-minute window. Excess requests get 429 with Retry-After.
// When disabled it passes requests through untouched.
func RateLimit(cfg config.RateLimitConfig) Middleware {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			WriteError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
		}),
	)
}
