package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Addr       string `env:"ADDR" envDefault:":8080"`
	IsTestMode bool   `env:"TEST_MODE"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	EmailSender string `env:"EMAIL_SENDER,required"`

	S3Bucket   string `env:"S3_BUCKET,required"`
	S3Endpoint string `env:"S3_ENDPOINT"`

	TemplateFetchTimeout time.Duration `env:"TEMPLATE_FETCH_TIMEOUT" envDefault:"10s"`

	LogInRateLimitPerHour         uint16 `env:"LOG_IN_RATE_LIMIT_PER_HOUR" envDefault:"10"`
	ResetPasswordRateLimitPerHour uint16 `env:"RESET_PASSWORD_RATE_LIMIT_PER_HOUR" envDefault:"3"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
