package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]any)

	defaultEnvOnce sync.Once
)

// LoadEnv loads environment variables from the given .env files into the
// process environment. Without arguments it loads the default ".env" from
// the current working directory. Existing variables are never overridden,
// so the real environment always wins over file contents.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(fmt.Sprintf("config: failed to load env files: %v", err))
	}
}

// Load populates the configuration struct from environment variables
// using `env` field tags. The default ".env" file is loaded once per
// process before the first parse; a missing file is not an error.
//
// Each configuration type is parsed at most once: subsequent Load calls
// for the same type return the cached copy, so packages can load their
// own configuration independently without re-reading the environment.
//
// Example:
//
//	type SourceConfig struct {
//	    RolesKey string `env:"AUTHZ_REDIS_ROLES_KEY" envDefault:"authz:roles"`
//	}
//
//	var cfg SourceConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvOnce.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	cacheMu.RLock()
	cached, ok := cache[key]
	cacheMu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cacheMu.Lock()
	// A concurrent Load may have won the race; keep the first stored
	// value so every caller observes the same configuration.
	if cached, ok := cache[key]; ok {
		*v = cached.(T)
	} else {
		cache[key] = *v
	}
	cacheMu.Unlock()

	return nil
}

// MustLoad works like Load but panics on failure. Use it for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
}

// ResetCache drops all cached configuration values. Intended for tests
// that mutate the environment between loads.
func ResetCache() {
	cacheMu.Lock()
	cache = make(map[string]any)
	cacheMu.Unlock()
}

// typeName returns a string identifier for the generic type T.
func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
