// Package config loads application configuration from environment variables
// into tagged structs using github.com/caarlos0/env/v11, reading .env files
// with github.com/joho/godotenv.
//
// Each configuration type is parsed once and cached, so packages may call
// Load for the same struct without re-reading the environment. Tests that
// change variables call ResetCache.
//
//	type AppConfig struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
