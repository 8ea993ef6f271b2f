// Package config provides environment configuration management.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store driver names accepted in StoreDriver.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all environment configuration for the application.
type Config struct {
	Port        string `env:"PORT"         envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME"     envDefault:"eventsphere"`
	DBSSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.StoreDriver != DriverMemory && cfg.StoreDriver != DriverPostgres {
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q", DriverMemory, DriverPostgres)
	}
	return cfg, nil
}

// DSN builds a libpq-compatible connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}
