package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// PublicBaseURL is the externally reachable base used in emailed links
	// (verification, invites, unsubscribe).
	PublicBaseURL string `env:"PUBLIC_BASE_URL, default=http://localhost:8080"`

	// HideInactiveTaxonomy excludes jobs in deactivated categories from the
	// public board instead of listing them under a hidden category.
	HideInactiveTaxonomy bool `env:"LISTING_HIDE_INACTIVE_TAXONOMY, default=false"`

	// FanoutWorkers sizes the notification dispatcher pool.
	FanoutWorkers int `env:"FANOUT_WORKERS, default=8"`

	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_board"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@jobdeck.io"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
