// Package config loads the application configuration from the environment.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings for the service.
type Config struct {
	Port string `env:"PORT, default=8080"`
	Env  string `env:"ENV, default=development"`

	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host        string `env:"DB_HOST, default=localhost"`
	Port        string `env:"DB_PORT, default=5432"`
	User        string `env:"DB_USER, default=postgres"`
	Password    string `env:"DB_PASSWORD"`
	Name        string `env:"DB_NAME, default=registry"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`
}

// RedisConfig holds the Redis settings. An empty Addr disables Redis: the
// service then keeps sessions in the database and serves the register
// uncached.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB, default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=5m"`
}

// SessionConfig controls session lifetime.
type SessionConfig struct {
	TTL time.Duration `env:"SESSION_TTL, default=168h"`
}

// Load reads the configuration from environment variables. A .env file is
// loaded first when present so local development matches deployment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the PostgreSQL connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}
