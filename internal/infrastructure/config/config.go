package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, read once at startup and
// immutable afterwards.
type Config struct {
	Port     string `env:"PORT,        default=8080"`
	Env      string `env:"ENVIRONMENT, default=dev"`
	LogLevel string `env:"LOG_LEVEL,   default=info"`

	// JWTSecret signs every issued token. Replicas must share it so
	// tokens verify across processes. Missing secret aborts startup.
	JWTSecret          string `env:"JWT_SECRET_KEY, required"`
	TokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES, default=30"`
	BcryptCost         int    `env:"BCRYPT_COST, default=10"`

	// UsersCollection is the storage table holding account records.
	UsersCollection string `env:"USERS_COLLECTION, required"`

	Mongo MongoConfig
	Redis RedisConfig
	Audit AuditConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_service"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AuditConfig struct {
	Workers    int    `env:"AUDIT_WORKERS,    default=4"`
	Collection string `env:"AUDIT_COLLECTION, default=auth_audit"`
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenExpireMinutes) * time.Minute
}

// IsProduction reports whether the service runs in a prod environment.
func (c *Config) IsProduction() bool {
	return c.Env == "prod" || c.Env == "production"
}

// Load reads configuration from environment variables using
// go-envconfig. A missing required variable is fatal: there is no
// request-time recovery from an absent signing secret.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
