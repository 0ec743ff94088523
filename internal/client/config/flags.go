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
//	-a string   auth service base URL (e.g. "http://localhost:4001")
//	-u string   user service base URL (e.g. "http://localhost:4002")
//	-t string   path of the token file
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.AuthBaseURL, "a", config.AuthBaseURL, "auth service base URL")
	fs.StringVar(&config.UserBaseURL, "u", config.UserBaseURL, "user service base URL")
	fs.StringVar(&config.TokenPath, "t", config.TokenPath, "token file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
