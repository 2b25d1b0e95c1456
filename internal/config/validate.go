package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	knownRoles = []string{"STUDENT", "OWNER", "ADMIN"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	roles := c.Auth.AllowedRoles()
	if len(roles) == 0 {
		return fmt.Errorf("auth.allowed_roles must list at least one role")
	}
	for _, r := range roles {
		if !slices.Contains(knownRoles, r) {
			return fmt.Errorf("auth.allowed_roles: unknown role %q", r)
		}
	}

	if err := c.Recommendation.validate(); err != nil {
		return fmt.Errorf("recommendation: %w", err)
	}

	if c.Notifications.Enabled {
		if err := c.Notifications.validate(); err != nil {
			return fmt.Errorf("notifications: %w", err)
		}
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required when notifications are enabled")
		}
		if c.Redis.Channel == "" {
			return fmt.Errorf("redis.channel is required when notifications are enabled")
		}
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if c.CORS.AllowCredentials && slices.Contains(c.CORS.Origins(), "*") {
		return fmt.Errorf("cors.allowed_origins must list explicit origins when cors.allow_credentials is true")
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (r *RecommendationConfig) validate() error {
	if r.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", r.MaxLimit, r.DefaultLimit)
	}
	if r.MatchLookback <= 0 {
		return fmt.Errorf("match_lookback must be > 0 (got %v)", r.MatchLookback)
	}
	if r.LoaderBatchCapacity <= 0 {
		return fmt.Errorf("loader_batch_capacity must be > 0 (got %d)", r.LoaderBatchCapacity)
	}
	return nil
}

func (n *NotificationsConfig) validate() error {
	if n.PublishTimeout <= 0 {
		return fmt.Errorf("publish_timeout must be > 0 (got %v)", n.PublishTimeout)
	}
	if n.BreakerFailureThreshold == 0 {
		return fmt.Errorf("breaker_failure_threshold must be > 0")
	}
	if n.WSSendBuffer <= 0 {
		return fmt.Errorf("ws_send_buffer must be > 0 (got %d)", n.WSSendBuffer)
	}
	return nil
}
