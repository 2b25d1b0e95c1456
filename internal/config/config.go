package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Database       DatabaseConfig       `yaml:"database"`
	Auth           AuthConfig           `yaml:"auth"`
	Redis          RedisConfig          `yaml:"redis"`
	Notifications  NotificationsConfig  `yaml:"notifications"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Log            LogConfig            `yaml:"log"`
	CORS           CORSConfig           `yaml:"cors"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"roommatch"`
}

// AuthConfig holds bearer-token validation settings. Tokens are issued by the
// account service; this service only verifies them.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"roommatch"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
	AllowedRolesRaw string        `yaml:"allowed_roles"    env:"AUTH_ALLOWED_ROLES"    env-default:"STUDENT,OWNER,ADMIN"`
}

// RedisConfig holds the pub/sub connection used for notifications.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	Channel  string `yaml:"channel"  env:"REDIS_CHANNEL"  env-default:"notifications"`
}

// NotificationsConfig tunes the dispatcher and the WebSocket delivery side.
type NotificationsConfig struct {
	Enabled                 bool          `yaml:"enabled"                   env:"NOTIFY_ENABLED"                   env-default:"true"`
	PublishTimeout          time.Duration `yaml:"publish_timeout"           env:"NOTIFY_PUBLISH_TIMEOUT"           env-default:"2s"`
	BreakerFailureThreshold uint32        `yaml:"breaker_failure_threshold" env:"NOTIFY_BREAKER_FAILURE_THRESHOLD" env-default:"5"`
	BreakerOpenTimeout      time.Duration `yaml:"breaker_open_timeout"      env:"NOTIFY_BREAKER_OPEN_TIMEOUT"      env-default:"30s"`
	BreakerInterval         time.Duration `yaml:"breaker_interval"          env:"NOTIFY_BREAKER_INTERVAL"          env-default:"1m"`
	WSWriteTimeout          time.Duration `yaml:"ws_write_timeout"          env:"NOTIFY_WS_WRITE_TIMEOUT"          env-default:"10s"`
	WSPongTimeout           time.Duration `yaml:"ws_pong_timeout"           env:"NOTIFY_WS_PONG_TIMEOUT"           env-default:"60s"`
	WSSendBuffer            int           `yaml:"ws_send_buffer"            env:"NOTIFY_WS_SEND_BUFFER"            env-default:"32"`
}

// RecommendationConfig holds ranking limits and match fan-out settings.
type RecommendationConfig struct {
	DefaultLimit        int           `yaml:"default_limit"         env:"RECO_DEFAULT_LIMIT"         env-default:"10"`
	MaxLimit            int           `yaml:"max_limit"             env:"RECO_MAX_LIMIT"             env-default:"50"`
	MatchLookback       time.Duration `yaml:"match_lookback"        env:"RECO_MATCH_LOOKBACK"        env-default:"24h"`
	LoaderWait          time.Duration `yaml:"loader_wait"           env:"RECO_LOADER_WAIT"           env-default:"2ms"`
	LoaderBatchCapacity int           `yaml:"loader_batch_capacity" env:"RECO_LOADER_BATCH_CAPACITY" env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	Enabled           bool `yaml:"enabled"             env:"RATE_LIMIT_ENABLED" env-default:"true"`
}

// AllowedRoles returns the roles whose tokens the API accepts.
func (c AuthConfig) AllowedRoles() []string {
	return splitList(c.AllowedRolesRaw)
}

// IsRoleAllowed reports whether tokens carrying role are accepted.
func (c AuthConfig) IsRoleAllowed(role string) bool {
	return slices.Contains(c.AllowedRoles(), role)
}

// Origins returns the configured CORS origins.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns the configured CORS methods.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns the configured CORS request headers.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
