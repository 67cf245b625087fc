// Package cli wires configuration, engine construction and terminal output
// for the adapta command line tool.
package cli

import (
	"context"
	"fmt"
	"os"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the CLI and the HTTP server. Values
// are resolved in order: defaults, YAML file, environment variables.
type Config struct {
	LogLevel     string `yaml:"log_level" env:"ADAPTA_LOG_LEVEL"`
	MaxSteps     int    `yaml:"max_steps" env:"ADAPTA_MAX_STEPS"`
	MaxCallDepth int    `yaml:"max_call_depth" env:"ADAPTA_MAX_CALL_DEPTH"`

	ListenAddr string `yaml:"listen_addr" env:"ADAPTA_LISTEN_ADDR"`

	Redis RedisConfig `yaml:"redis" env:", prefix=ADAPTA_REDIS_"`
}

// RedisConfig configures the optional Redis trace store. An empty Addr keeps
// traces in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		ListenAddr: ":8080",
	}
}

// LoadConfig resolves the configuration. A missing .env file is fine; a
// missing config file is only an error when the path was given explicitly.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	cfg := DefaultConfig()

	if err := dotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconf.Process(ctx, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process environment: %w", err)
	}

	return cfg, nil
}
