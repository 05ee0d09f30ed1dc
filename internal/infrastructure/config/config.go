package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig

	// ActivityWorkers sizes the async activity pipeline.
	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`
}

type AuthConfig struct {
	// JWTSecret signs bearer tokens; all instances sharing it accept each
	// other's tokens. Required outside development.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=24h"`
	// BcryptCost is the password hashing work factor. Raising it only
	// affects new hashes; old ones keep verifying with their stored cost.
	BcryptCost int `env:"BCRYPT_COST, default=12"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=commerce"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int           `env:"REDIS_DB,   default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL,  default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Env != "development" && cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET is required when ENV=%s", cfg.Env)
	}
	return &cfg, nil
}
