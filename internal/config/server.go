package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server settings read from the environment
type ServerConfig struct {
	Host            string        `env:"NACTCO_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"NACTCO_PORT" envDefault:"8080"`
	LogLevel        string        `env:"NACTCO_LOG_LEVEL" envDefault:"info"`
	LogDevelopment  bool          `env:"NACTCO_LOG_DEV" envDefault:"false"`
	CatalogPath     string        `env:"NACTCO_CATALOG"`
	ShutdownTimeout time.Duration `env:"NACTCO_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"NACTCO_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoadServerConfig loads a .env file if present, then parses the environment
func LoadServerConfig() (*ServerConfig, error) {
	_ = godotenv.Load()
	return ParseServerConfig()
}

// ParseServerConfig parses the process environment without touching .env files
func ParseServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("shutdown timeout must be positive, got %s", cfg.ShutdownTimeout)
	}

	return &cfg, nil
}

// Address is the host:port the server listens on
func (c *ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
