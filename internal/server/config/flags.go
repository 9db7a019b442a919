package config

import (
	"flag"
	"os"
	"time"

	"github.com/IskandarAbdumalikov/frontend-with-mongoDB/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      sign-up token validity, minutes
//
// os.Args is filtered to only the flags handled here, so parsing does
// not collide with flags owned by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	signUpTokenTTL := fs.Int("t", int(config.SignUpTokenTTL.Minutes()), "sign-up token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SignUpTokenTTL = time.Duration(*signUpTokenTTL) * time.Minute
}
