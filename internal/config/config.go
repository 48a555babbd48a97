package config

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the process configuration. Everything comes from environment
// variables with docker-compose friendly defaults.
type Config struct {
	Name        string `koanf:"app_name"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`
	Port        string `koanf:"port"`

	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`
}

var defaults = map[string]interface{}{
	"app_name":    "savings-server",
	"environment": "dev",
	"log_level":   "info",
	"port":        "8080",

	"postgres_address":  "localhost",
	"postgres_port":     "5433",
	"postgres_db":       "postgres",
	"postgres_username": "postgres",
	"postgres_password": "testpassword",
}

// ProcessEnvironmentVariables loads defaults and overlays environment
// variables (APP_NAME, LOG_LEVEL, PORT, POSTGRES_ADDRESS, ...).
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	envProvider := env.Provider("", ".", func(key string) string {
		return strings.ToLower(key)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// PostgresURL renders the connection string for lib/pq.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
