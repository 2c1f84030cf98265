// Package common provides shared utilities for Finsight
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Finsight
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Clients     ClientsConfig `toml:"clients"`
	Cache       CacheConfig   `toml:"cache"`
	Auth        AuthConfig    `toml:"auth"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ClientsConfig holds upstream service client configurations
type ClientsConfig struct {
	Ledger UpstreamConfig `toml:"ledger"`
	Budget UpstreamConfig `toml:"budget"`
}

// UpstreamConfig holds configuration for one upstream HTTP service.
type UpstreamConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration
func (c *UpstreamConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// CacheConfig holds cache store configuration.
// Backend selects the implementation: "surrealdb" (networked, shared across
// instances), "memory" (in-process), or "none". An unreachable surrealdb
// backend degrades to "none" at startup rather than failing the service.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	Address   string `toml:"address"`
	Namespace string `toml:"namespace"`
	Database  string `toml:"database"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	TTL       string `toml:"ttl"`
}

// GetTTL parses and returns the default cache entry TTL.
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// AuthConfig holds bearer token validation configuration.
// Finsight validates inbound JWTs and forwards the raw token to upstream
// services; it never issues tokens.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 3004,
		},
		Clients: ClientsConfig{
			Ledger: UpstreamConfig{
				BaseURL:   "http://localhost:3003",
				RateLimit: 20,
				Timeout:   "10s",
			},
			Budget: UpstreamConfig{
				BaseURL:   "http://localhost:3002",
				RateLimit: 20,
				Timeout:   "10s",
			},
		},
		Cache: CacheConfig{
			Backend:   "surrealdb",
			Address:   "ws://localhost:8000",
			Namespace: "finsight",
			Database:  "analytics",
			Username:  "root",
			Password:  "root",
			TTL:       "5m",
		},
		Auth: AuthConfig{
			JWTSecret: "dev-jwt-secret-change-in-production",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINSIGHT_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINSIGHT_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINSIGHT_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINSIGHT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if url := os.Getenv("FINSIGHT_LEDGER_URL"); url != "" {
		config.Clients.Ledger.BaseURL = url
	}
	if url := os.Getenv("FINSIGHT_BUDGET_URL"); url != "" {
		config.Clients.Budget.BaseURL = url
	}

	if v := os.Getenv("FINSIGHT_CACHE_BACKEND"); v != "" {
		config.Cache.Backend = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_ADDRESS"); v != "" {
		config.Cache.Address = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_USERNAME"); v != "" {
		config.Cache.Username = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_PASSWORD"); v != "" {
		config.Cache.Password = v
	}
	if v := os.Getenv("FINSIGHT_CACHE_TTL"); v != "" {
		config.Cache.TTL = v
	}

	if v := os.Getenv("FINSIGHT_AUTH_JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}

// ValidateRequired returns the names of required settings that are missing or
// still at insecure defaults. Empty slice means the config is deployable.
func (c *Config) ValidateRequired() []string {
	var missing []string
	if c.Clients.Ledger.BaseURL == "" {
		missing = append(missing, "clients.ledger.base_url")
	}
	if c.Clients.Budget.BaseURL == "" {
		missing = append(missing, "clients.budget.base_url")
	}
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == "dev-jwt-secret-change-in-production" {
		missing = append(missing, "auth.jwt_secret")
	}
	return missing
}
