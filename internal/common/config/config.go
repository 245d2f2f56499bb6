// internal/common/config/config.go
package config

import "fmt"

// Config is the main client configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the client at the platform REST API.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// SessionConfig selects where the bearer token is persisted between runs.
type SessionConfig struct {
	Store    string      `mapstructure:"store"` // memory, file, redis
	FilePath string      `mapstructure:"file_path"`
	Redis    RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	switch c.Session.Store {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("session.store must be one of memory, file, redis")
	}
	if c.Session.Store == "file" && c.Session.FilePath == "" {
		return fmt.Errorf("session.file_path is required for the file store")
	}
	if c.Session.Store == "redis" && c.Session.Redis.Address == "" {
		return fmt.Errorf("session.redis.address is required for the redis store")
	}
	return nil
}
