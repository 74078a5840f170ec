// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Load parses the environment into any struct annotated with `env` tags and
//     caches the result per type for the lifetime of the process.
//   - LoadEnv reads one or more .env files into the environment. The default .env
//     in the working directory is picked up automatically on first Load.
//   - ResetCache forgets every parsed type, which is handy in tests.
//
// # Usage
//
//	type Settings struct {
//	    LogLevel  string `env:"VERIFY_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"VERIFY_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// # Error Handling
//
//   - ErrParsingConfig: failed to parse env vars into struct.
//   - ErrLoadingEnvFile: a .env file passed to LoadEnv could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
package config
