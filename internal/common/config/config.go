package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"3001"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:5173"`
	}

	Webhook struct {
		// Shared secret expected in BitBadges webhook payloads. When empty,
		// webhook authentication is skipped entirely.
		SharedSecret string `env:"BITBADGES_WEBHOOK_SECRET" envDefault:""`
	}

	Store struct {
		// Backend selects the membership store implementation: memory,
		// redis or postgres. Memory is the default and keeps no state
		// across restarts.
		Backend string `env:"STORE_BACKEND" envDefault:"memory"`

		RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
		RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

		DatabaseURL string `env:"DATABASE_URL" envDefault:""`
	}

	Pinata struct {
		JWT     string `env:"PINATA_JWT" envDefault:""`
		Gateway string `env:"PINATA_GATEWAY" envDefault:"https://gateway.pinata.cloud"`
	}

	Mail struct {
		SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
		SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
		User     string `env:"EMAIL_USER" envDefault:""`
		Password string `env:"EMAIL_PASS" envDefault:""`
	}

	// WebAppURL is the public front end, linked from notification emails.
	WebAppURL string `env:"WEBAPP_URL" envDefault:"http://localhost:5173"`
}

func Load() *Config {
	// A missing .env file is fine; in production the variables are set
	// directly in the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
