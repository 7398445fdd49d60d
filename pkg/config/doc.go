// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for parsing and github.com/joho/godotenv
// for .env files. Each configuration type is parsed once and cached, so
// packages can call Load for their own config without coordinating:
//
//	type Config struct {
//	    CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
//	    TTL        time.Duration `env:"SESSION_TTL" envDefault:"30m"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The .env file in the working directory is read before the first parse.
// LoadEnv reads other files; values already present in the environment win.
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
