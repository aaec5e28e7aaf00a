package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var (
	ErrMissingJWTSecret  = errors.New("config: JWT_SECRET is required with the postgres backend")
	ErrUnknownBackend    = errors.New("config: STORAGE_BACKEND must be postgres or memory")
	ErrUnknownDriver     = errors.New("config: DB_DRIVER must be pgx or postgres")
	ErrInvalidTimezone   = errors.New("config: DEFAULT_TIMEZONE is not a valid IANA zone")
	ErrInvalidRateLimit  = errors.New("config: RATE_LIMIT and RATE_WINDOW must be positive")
	ErrInvalidLogSetting = errors.New("config: LOG_FORMAT must be json or text")
)

type Config struct {
	Port           string `env:"PORT,default=8080"`
	StorageBackend string `env:"STORAGE_BACKEND,default=postgres"`

	DB       DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Limits   RateLimitConfig
	Insights InsightsConfig
	Log      LogConfig

	GoalsCacheTTL time.Duration `env:"GOALS_CACHE_TTL,default=30m"`
}

type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER,default=pgx"`
	Host     string `env:"DB_HOST,default=localhost"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=journal_user"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME,default=journal_db"`
	SSLMode  string `env:"DB_SSLMODE,default=disable"`
}

// DSN is understood by both the pgx and the lib/pq drivers.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT,default=6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,default=0"`
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	Issuer string        `env:"JWT_ISSUER,default=leverage-journal"`
	TTL    time.Duration `env:"JWT_TTL,default=24h"`
}

type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT,default=100"`
	Window   time.Duration `env:"RATE_WINDOW,default=1m"`
}

type InsightsConfig struct {
	DefaultTimezone string        `env:"DEFAULT_TIMEZONE,default=UTC"`
	FetchTimeout    time.Duration `env:"INSIGHTS_FETCH_TIMEOUT,default=5s"`
}

// Location resolves DefaultTimezone. Load has already validated it.
func (c InsightsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=json"`
}

// Load reads an optional .env file and decodes the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// Missing files are fine, the environment may already be populated.
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case BackendPostgres:
		if c.JWT.Secret == "" {
			return ErrMissingJWTSecret
		}
	case BackendMemory:
		if c.JWT.Secret == "" {
			c.JWT.Secret = "memory-backend-dev-secret"
		}
	default:
		return ErrUnknownBackend
	}

	if c.DB.Driver != "pgx" && c.DB.Driver != "postgres" {
		return ErrUnknownDriver
	}

	if _, err := time.LoadLocation(c.Insights.DefaultTimezone); err != nil {
		return ErrInvalidTimezone
	}

	if c.Limits.Requests <= 0 || c.Limits.Window <= 0 {
		return ErrInvalidRateLimit
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return ErrInvalidLogSetting
	}

	return nil
}
