package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache holds one parsed value per configuration type.
	cache sync.Map

	// dotenvOnce guards the one-time .env autoload.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg according to its env struct
// tags. A .env file in the working directory is merged into the process
// environment on first use; a missing file is not an error.
//
// Each configuration type is parsed once per process and cached, so
// repeated loads of the same type return identical values even if the
// environment changed in between.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config target cannot be nil")
	}

	dotenvOnce.Do(func() {
		// Absence of a .env file means configuration comes from the real
		// environment; only parse failures surface via env.Parse below.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config from environment: %w", err)
	}

	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is Load for startup paths where a broken environment should
// stop the process. It panics on failure.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
