package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServerAddr string `env:"SERVER_ADDR" env-required:"true"`
	DbURL      string `env:"DB_URL" env-required:"true"`

	JWTSecret       string        `env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" env-default:"168h"`

	DefaultPageSize   int `env:"DEFAULT_PAGE_SIZE" env-default:"10"`
	DefaultPageNumber int `env:"DEFAULT_PAGE_NUMBER" env-default:"1"`
	BcryptCost        int `env:"BCRYPT_COST" env-default:"10"`
}

func LoadConfig() (*Config, error) {
	var config Config

	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if config.DefaultPageSize < 1 || config.DefaultPageNumber < 1 {
		return nil, fmt.Errorf("pagination defaults must be positive")
	}

	return &config, nil
}
