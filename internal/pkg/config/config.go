package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StorageFile     = "file"
	StorageMongo    = "mongo"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	Timezone string `env:"TIMEZONE,  default=Local"`

	Session    SessionConfig
	Storage    StorageConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	Postgres   PostgresConfig
	Suggestion SuggestionConfig
}

type SessionConfig struct {
	JWTSecret      string        `env:"JWT_SECRET"`
	TokenTTL       time.Duration `env:"TOKEN_TTL, default=24h"`
	PassphraseHash string        `env:"HOUSEHOLD_PASSPHRASE_HASH"`
}

type StorageConfig struct {
	Backend  string `env:"STORAGE_BACKEND, default=file"`
	DataDir  string `env:"DATA_DIR,        default=./data"`
	SeedFile string `env:"SEED_FILE"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=family_calendar"`
}

type RedisConfig struct {
	// Addr is optional unless STORAGE_BACKEND=redis; when set it also enables
	// Idempotency-Key support for event creation.
	Addr           string        `env:"REDIS_ADDR"`
	DB             int           `env:"REDIS_DB,         default=0"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX, default=calendar:"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL,  default=24h"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type SuggestionConfig struct {
	Provider        string        `env:"SUGGESTION_PROVIDER, default=auto"`
	Timeout         time.Duration `env:"SUGGESTION_TIMEOUT,  default=20s"`
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL"`
	OpenAIModel     string        `env:"OPENAI_MODEL,        default=gpt-4o-mini"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string        `env:"ANTHROPIC_MODEL,     default=claude-3-5-haiku-latest"`
}

// Load reads an optional .env file, then configuration from environment
// variables using go-envconfig. Variables already set in the environment take
// precedence over the .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}

	cfg, err := LoadFrom(envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration from l and validates it.
func LoadFrom(l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements that struct tags cannot express.
func (c *Config) Validate() error {
	if c.Session.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case StorageFile:
		if c.Storage.DataDir == "" {
			return errors.New("config: DATA_DIR is required for the file backend")
		}
	case StorageMongo:
		if c.Mongo.URI == "" {
			return errors.New("config: MONGO_URI is required for the mongo backend")
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return errors.New("config: REDIS_ADDR is required for the redis backend")
		}
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return errors.New("config: POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the household time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}
