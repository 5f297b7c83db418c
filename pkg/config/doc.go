// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment.
//     Without it, Load falls back to an optional .env in the working directory.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so each type is parsed once.
//   - MustLoad panics on failure for configuration the program cannot run without.
//   - ResetCache clears the cache between tests.
//
// Usage:
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Target   string `env:"UNICLEANER_TARGET" envDefault:"src/index-site.js"`
//	}
//
//	if err := config.LoadEnv(".env.local"); err != nil {
//		return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors are sentinels compared with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
