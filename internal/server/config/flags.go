package config

import (
	"flag"
	"os"

	"github.com/mpetrov/dashauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     auth service bind address (e.g. ":4001")
//	-u string     user service bind address (e.g. ":4002")
//	-d string     PostgreSQL DSN
//	-s string     token signing secret
//	-o string     allowed CORS origin
//	-st duration  signup token lifetime (e.g. "72h")
//	-lt duration  login token lifetime (e.g. "1h")
//
// The arguments are first filtered to the flags handled here using
// flagx.FilterArgs, so unrecognized flags elsewhere in the binary do not
// abort parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d", "-s", "-o", "-st", "-lt"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.AuthAddr, "a", config.AuthAddr, "auth service address and port")
	fs.StringVar(&config.UserAddr, "u", config.UserAddr, "user service address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	fs.StringVar(&config.AllowedOrigin, "o", config.AllowedOrigin, "allowed CORS origin")
	fs.DurationVar(&config.SignupTokenValidity, "st", config.SignupTokenValidity, "signup token validity")
	fs.DurationVar(&config.LoginTokenValidity, "lt", config.LoginTokenValidity, "login token validity")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
