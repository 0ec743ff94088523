package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment, loading a .env
// file from the working directory first if one exists.
//
// Recognized variables: AUTH_URL, USER_URL, TOKEN_PATH.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("AUTH_URL"); ok {
		cfg.AuthBaseURL = v
	}
	if v, ok := os.LookupEnv("USER_URL"); ok {
		cfg.UserBaseURL = v
	}
	if v, ok := os.LookupEnv("TOKEN_PATH"); ok {
		cfg.TokenPath = v
	}
}
