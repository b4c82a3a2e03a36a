// Package config loads unipile-mcp configuration from TOML files with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/omnimsg/unipile-mcp/internal/common"
)

// Config holds all unipile-mcp configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	Unipile UnipileConfig        `toml:"unipile"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// UnipileConfig holds the Unipile API connection settings and the optional
// default account identifiers substituted into tool calls.
type UnipileConfig struct {
	BaseURL           string `toml:"base_url"`
	APIKey            string `toml:"api_key"`
	LinkedInAccountID string `toml:"linkedin_account_id"`
	EmailAccountID    string `toml:"email_account_id"`
}

// APIOrigin returns the base URL with the trailing /api/... segment removed.
// Unipile hosted-auth endpoints want the DSN origin, not the API root.
func (c *UnipileConfig) APIOrigin() string {
	if idx := strings.LastIndex(c.BaseURL, "/api/"); idx >= 0 {
		return c.BaseURL[:idx]
	}
	return c.BaseURL
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "unipile-mcp",
			Port: "4250",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/unipile-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration with priority: defaults -> file -> env.
// A missing config file is not an error; env-only setups are supported.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	cfg.Unipile.BaseURL = strings.TrimRight(cfg.Unipile.BaseURL, "/")

	return cfg, nil
}

// applyEnvOverrides applies UNIPILE_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UNIPILE_BASE_URL"); v != "" {
		cfg.Unipile.BaseURL = v
	}
	if v := os.Getenv("UNIPILE_API_KEY"); v != "" {
		cfg.Unipile.APIKey = v
	}
	if v := os.Getenv("UNIPILE_LINKEDIN_ACCOUNT_ID"); v != "" {
		cfg.Unipile.LinkedInAccountID = v
	}
	if v := os.Getenv("UNIPILE_EMAIL_ACCOUNT_ID"); v != "" {
		cfg.Unipile.EmailAccountID = v
	}
	if v := os.Getenv("UNIPILE_MCP_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("UNIPILE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks that the required Unipile connection settings are present.
// Called at startup so a misconfigured process fails fast instead of failing
// on the first tool call.
func (c *Config) Validate() error {
	if c.Unipile.BaseURL == "" {
		return fmt.Errorf("UNIPILE_BASE_URL must be set")
	}
	if c.Unipile.APIKey == "" {
		return fmt.Errorf("UNIPILE_API_KEY must be set")
	}
	return nil
}
