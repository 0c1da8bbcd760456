package config

import (
	"flag"
	"os"

	"hrms/backend/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-e string   environment ("development" | "production")
//	-z string   IANA timezone for the dashboard date boundary
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-e", "-z"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.Env, "e", config.Env, "environment (development|production)")
	fs.StringVar(&config.TimezoneName, "z", config.TimezoneName, "dashboard timezone (IANA name)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
