// Package config loads binary configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: LoadEnv
// reads optional .env files into the process environment and Load parses the
// environment into any struct annotated with env tags.
//
//	type Config struct {
//	    LogLevel string `env:"FORMCHECK_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Variables already present in the environment take precedence over values
// from .env files.
package config
