package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const AVATAR_SIZE = 300

// Config holds every runtime knob parsed from the environment.
type Config struct {
	Port    string `env:"PORT,required,notEmpty"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	DBUser string `env:"DB_USER,required,notEmpty"`
	DBPass string `env:"DB_PASS,required,notEmpty"`
	DBHost string `env:"DB_HOST,required,notEmpty"`
	DBName string `env:"DB_NAME" envDefault:"chirper"`

	FeOrigins []string `env:"FE_ORIGINS" envSeparator:";" envDefault:"http://localhost:3000"`

	// AccountDomain is the email domain usernames resolve against in the
	// identity directory.
	AccountDomain string `env:"ACCOUNT_DOMAIN" envDefault:"chirper.app"`

	FeedPageSize int `env:"FEED_PAGE_SIZE" envDefault:"100"`

	RateLimitPerWindow int           `env:"RATE_LIMIT_PER_WINDOW" envDefault:"20"`
	RateLimitWindow    time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
