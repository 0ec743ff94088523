// Package config handles configuration for the CLI client, including
// defaults, environment overlay (.env aware), and command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - AuthBaseURL / UserBaseURL: base URLs of the auth and user services.
//   - TokenPath: file where the session token is persisted between runs.
type Config struct {
	AuthBaseURL string
	UserBaseURL string
	TokenPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AuthBaseURL = "http://localhost:4001"
	c.UserBaseURL = "http://localhost:4002"
	c.TokenPath = defaultTokenPath()
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dashauth_token"
	}
	return filepath.Join(home, ".dashauth", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
