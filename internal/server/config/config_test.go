package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":4001", c.AuthAddr)
	assert.Equal(t, ":4002", c.UserAddr)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, DefaultSecretKey, c.SecretKey)
	assert.Equal(t, "http://localhost:5173", c.AllowedOrigin)
	assert.Equal(t, 72*time.Hour, c.SignupTokenValidity)
	assert.Equal(t, 1*time.Hour, c.LoginTokenValidity)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_ADDRESS", ":9001")
	t.Setenv("DATABASE_DSN", "postgres://test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SIGNUP_TOKEN_TTL", "48h")
	t.Setenv("LOGIN_TOKEN_TTL", "30m")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9001", c.AuthAddr)
	assert.Equal(t, ":4002", c.UserAddr, "untouched fields keep defaults")
	assert.Equal(t, "postgres://test", c.DatabaseDSN)
	assert.Equal(t, "s3cret", c.SecretKey)
	assert.Equal(t, 48*time.Hour, c.SignupTokenValidity)
	assert.Equal(t, 30*time.Minute, c.LoginTokenValidity)
}

func TestParseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("LOGIN_TOKEN_TTL", "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 1*time.Hour, c.LoginTokenValidity)
}

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"authserver", "-d", "postgres://flag", "-s=flagsecret", "-lt", "15m", "-unknown", "x"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	require.Equal(t, "postgres://flag", c.DatabaseDSN)
	assert.Equal(t, "flagsecret", c.SecretKey)
	assert.Equal(t, 15*time.Minute, c.LoginTokenValidity)
	assert.Equal(t, ":4001", c.AuthAddr)
}
