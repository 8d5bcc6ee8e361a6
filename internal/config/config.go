/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration shared by the HTTP API
// server and the discord bot.
type Config struct {
	// HTTP server configuration
	Server ServerConfig `toml:"server"`

	// Input guard limits
	Limits LimitsConfig `toml:"limits"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int      `toml:"port"`            // Listen port
	AllowedOrigins []string `toml:"allowed_origins"` // CORS origins
}

// LimitsConfig bounds the numeric inputs the presentation layers accept
// before invoking the estimators. The estimators themselves are total
// functions and do not validate; these are the caller-side guards.
type LimitsConfig struct {
	MaxPlayers int `toml:"max_players"` // Largest accepted event size
	MaxRounds  int `toml:"max_rounds"`  // Largest accepted round count
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Limits: LimitsConfig{
			MaxPlayers: 4096,
			MaxRounds:  20,
		},
	}
}

// Load loads the configuration from the given path. Returns the default
// config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Limits.MaxPlayers < 8 {
		return fmt.Errorf("max players must allow at least one Top 8 event: %d",
			c.Limits.MaxPlayers)
	}
	if c.Limits.MaxRounds < 1 {
		return fmt.Errorf("max rounds must be positive: %d", c.Limits.MaxRounds)
	}
	return nil
}
