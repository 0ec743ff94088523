package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first, if present; variables already set in
// the process environment win over the file.
//
// Recognized variables:
//
//	AUTH_ADDRESS      bind address of the auth service (e.g. ":4001")
//	USER_ADDRESS      bind address of the user service (e.g. ":4002")
//	DATABASE_DSN      PostgreSQL DSN
//	JWT_SECRET        token signing secret
//	ALLOW_ORIGIN      allowed CORS origin of the browser client
//	SIGNUP_TOKEN_TTL  signup token lifetime, Go duration string (e.g. "72h")
//	LOGIN_TOKEN_TTL   login token lifetime, Go duration string (e.g. "1h")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("AUTH_ADDRESS"); ok {
		cfg.AuthAddr = v
	}
	if v, ok := os.LookupEnv("USER_ADDRESS"); ok {
		cfg.UserAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("ALLOW_ORIGIN"); ok {
		cfg.AllowedOrigin = v
	}
	if v, ok := os.LookupEnv("SIGNUP_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SignupTokenValidity = d
		}
	}
	if v, ok := os.LookupEnv("LOGIN_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LoginTokenValidity = d
		}
	}
}
