package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// AccessSecret and RefreshSecret sign the two token kinds and must
	// differ: an access token must never verify as a refresh token.
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL, default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=quickpost"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// The signing secrets have no defaults and are required at process start.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.AccessSecret == "" || cfg.Auth.RefreshSecret == "" {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	return &cfg, nil
}
