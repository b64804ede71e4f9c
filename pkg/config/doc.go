// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`
// behind a small API that:
//
//   - Loads values from one or multiple `.env` files, falling back to the
//     default `.env` in the current working directory.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully parsed configuration type so it is read
//     only once per process, even across packages.
//   - Exposes panicking variants (MustLoadEnv, MustLoad) for configuration
//     the process cannot start without.
//
// # Usage
//
// Describe the configuration with `env` tags:
//
//	type RedisSourceConfig struct {
//	    RolesKey string `env:"AUTHZ_REDIS_ROLES_KEY" envDefault:"authz:roles"`
//	}
//
// Then populate it:
//
//	import "github.com/dmitrymomot/authzkit/pkg/config"
//
//	var cfg RedisSourceConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Tests that mutate the environment between loads should call ResetCache
// to discard previously parsed values.
package config
