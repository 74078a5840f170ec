package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/verify/pkg/cache"
)

var (
	// loaded stores parsed configurations keyed by their type.
	loaded atomic.Pointer[cache.Map[reflect.Type, any]]

	defaultEnvLoaded sync.Once
)

func init() {
	loaded.Store(new(cache.Map[reflect.Type, any]))
}

// Load parses environment variables into the provided configuration struct.
// Each configuration type is parsed once; later calls return the cached copy.
//
// The default .env file is loaded on first use if present.
//
// Example:
//
//	type Settings struct {
//		LogLevel string `env:"VERIFY_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	cfg, err := loaded.Load().GetOrCompute(reflect.TypeFor[T](), func() (any, error) {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			return nil, errors.Join(ErrParsingConfig, err)
		}
		return parsed, nil
	})
	if err != nil {
		return err
	}

	*v = cfg.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment.
// Variables already set in the environment take precedence.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again.
func ResetCache() {
	loaded.Store(new(cache.Map[reflect.Type, any]))
}
