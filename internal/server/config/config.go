// Package config handles configuration for the auth and user services,
// including defaults, environment overlay (.env aware), and command-line
// flags. The resulting Config is constructed once at startup and passed to
// each component; nothing reads process environment after that.
package config

import "time"

// DefaultSecretKey is the insecure development signing secret. Services warn
// at startup when it has not been overridden.
const DefaultSecretKey = "change-me"

// Config holds runtime settings shared by both services.
//
// Fields:
//   - AuthAddr / UserAddr: bind addresses of the auth and user services.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required; startup fails without it.
//   - SecretKey: HMAC secret for signing tokens (HS256).
//   - AllowedOrigin: the browser client origin allowed by CORS.
//   - SignupTokenValidity / LoginTokenValidity: token lifetimes for the two
//     issuance paths.
type Config struct {
	AuthAddr            string
	UserAddr            string
	DatabaseDSN         string
	SecretKey           string
	AllowedOrigin       string
	SignupTokenValidity time.Duration
	LoginTokenValidity  time.Duration
}

// LoadDefaults populates Config with development defaults. DatabaseDSN has no
// default: the services refuse to start without a store connection string.
func (c *Config) LoadDefaults() {
	c.AuthAddr = ":4001"
	c.UserAddr = ":4002"
	c.DatabaseDSN = ""
	c.SecretKey = DefaultSecretKey
	c.AllowedOrigin = "http://localhost:5173"
	c.SignupTokenValidity = 72 * time.Hour
	c.LoginTokenValidity = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
