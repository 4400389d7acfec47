package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	// Planner fixes the working year and the inclusive date range that
	// schedule and totals queries default to.
	Planner struct {
		Year       int32  `env:"YEAR" envDefault:"2026"`
		RangeStart string `env:"RANGE_START" envDefault:"2026-01-12"`
		RangeEnd   string `env:"RANGE_END" envDefault:"2026-11-28"`
	} `envPrefix:"PLANNER_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379"`
		Password       string `env:"PASSWORD" envDefault:""`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		NotifyCooldown int    `env:"NOTIFY_COOLDOWN" envDefault:"300"` // seconds between change summaries
	} `envPrefix:"REDIS_"`
	Email struct {
		From string   `env:"FROM,required"`
		To   []string `env:"TO,required"`
		SMTP struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Client struct {
		BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`
		Timeout int    `env:"TIMEOUT" envDefault:"15"`
	} `envPrefix:"CLIENT_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only surface the first error, it keeps the logs readable
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
