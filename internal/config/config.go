package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`

	// StoreDriver selects the wallet persistence backend: memory, sqlite
	// or postgres. DatabaseURL is only required for postgres.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"walletd.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	FaceAPIURL    string  `env:"FACE_API_URL" envDefault:"http://mock-faced:8082"`
	FaceThreshold float64 `env:"FACE_THRESHOLD" envDefault:"0.6"`

	SettlementDelayMS int             `env:"SETTLEMENT_DELAY_MS" envDefault:"2000"`
	PaymentLimit      decimal.Decimal `env:"PAYMENT_LIMIT" envDefault:"10000"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeS int `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config.Load: DATABASE_URL is required when STORE_DRIVER=postgres")
	}
	return &cfg, nil
}
