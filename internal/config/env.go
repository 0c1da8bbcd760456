package config

import (
	"fmt"
	"net/url"
	"os"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS       bind address (":8000"); PORT is accepted as a legacy alias
//	APP_ENV       "development" | "production"
//	TZ_NAME       IANA timezone for the dashboard date boundary
//	DATABASE_DSN  full PostgreSQL DSN; wins over the DB_* parts below
//	DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
//	              legacy .env layout; assembled into a DSN when any is set
func parseEnv(c *Config) {
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		c.Env = v
	}
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		c.Address = v
	} else if v, ok := os.LookupEnv("PORT"); ok {
		c.Address = ":" + v
	}
	if v, ok := os.LookupEnv("TZ_NAME"); ok {
		c.TimezoneName = v
	}

	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		c.DatabaseDSN = v
		return
	}
	if dsn, ok := dsnFromParts(c); ok {
		c.DatabaseDSN = dsn
	}
}

// dsnFromParts assembles a DSN from the legacy DB_* variables. The sslmode
// default depends on the environment: production requires an encrypted
// transport to the store.
func dsnFromParts(c *Config) (string, bool) {
	any := false
	get := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok {
			any = true
			return v
		}
		return def
	}

	host := get("DB_HOST", "localhost")
	port := get("DB_PORT", "5432")
	user := get("DB_USER", "postgres")
	password := get("DB_PASSWORD", "")
	name := get("DB_NAME", "hrms")

	sslDefault := "disable"
	if c.IsProduction() {
		sslDefault = "require"
	}
	sslmode := get("DB_SSLMODE", sslDefault)

	if !any {
		return "", false
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, name, sslmode), true
}
