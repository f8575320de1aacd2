package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends accepted by CART_STORE.
const (
	StoreMemory  = "memory"
	StoreFile    = "file"
	StoreRedis   = "redis"
	StoreSpanner = "spanner"
)

// Config is read from the environment. Variable names are given by the
// envconfig tags; defaults suit a local run against the memory store.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	GRPCAddr string `envconfig:"GRPC_ADDR" default:":50051"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	CartStore      string `envconfig:"CART_STORE" default:"memory"`
	CartStorageKey string `envconfig:"CART_STORAGE_KEY" default:"ecommerce_carts"`
	CartFilePath   string `envconfig:"CART_FILE_PATH" default:"carts.json"`

	RedisAddr       string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	SpannerDatabase string `envconfig:"SPANNER_DATABASE" default:"projects/test-project/instances/emulator-instance/databases/test-db"`

	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.CartStore = strings.ToLower(strings.TrimSpace(c.CartStore))
	switch c.CartStore {
	case StoreMemory, StoreFile, StoreRedis, StoreSpanner:
	default:
		return fmt.Errorf("config: CART_STORE %q is not one of memory, file, redis, spanner", c.CartStore)
	}
	if strings.TrimSpace(c.CartStorageKey) == "" {
		return fmt.Errorf("config: CART_STORAGE_KEY must not be empty")
	}
	if c.CartStore == StoreFile && strings.TrimSpace(c.CartFilePath) == "" {
		return fmt.Errorf("config: CART_FILE_PATH is required for the file store")
	}
	if c.CartStore == StoreRedis && strings.TrimSpace(c.RedisAddr) == "" {
		return fmt.Errorf("config: REDIS_ADDR is required for the redis store")
	}
	if c.CartStore == StoreSpanner && strings.TrimSpace(c.SpannerDatabase) == "" {
		return fmt.Errorf("config: SPANNER_DATABASE is required for the spanner store")
	}
	if c.GRPCAddr == "" && c.HTTPAddr == "" {
		return fmt.Errorf("config: at least one of GRPC_ADDR or HTTP_ADDR must be set")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
