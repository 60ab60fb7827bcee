package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiortechnologyinc/atheme/core/config"
)

// Tests mutate the process environment via t.Setenv, so they must not run
// in parallel. Each test declares its own config type because parsed values
// are cached per type for the process lifetime.

func TestLoad(t *testing.T) {
	t.Run("parses values from environment", func(t *testing.T) {
		type parseConfig struct {
			Dir   string `env:"CONFIG_TEST_PARSE_DIR" envDefault:"/tmp/locale"`
			Debug bool   `env:"CONFIG_TEST_PARSE_DEBUG" envDefault:"false"`
		}

		t.Setenv("CONFIG_TEST_PARSE_DIR", "/var/lib/services/locale")
		t.Setenv("CONFIG_TEST_PARSE_DEBUG", "true")

		var cfg parseConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/var/lib/services/locale", cfg.Dir)
		assert.True(t, cfg.Debug)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		type defaultConfig struct {
			Language string `env:"CONFIG_TEST_DEFAULT_LANGUAGE" envDefault:"en"`
		}

		var cfg defaultConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.Language)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		type requiredConfig struct {
			Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config from environment")
	})

	t.Run("caches the first loaded value per type", func(t *testing.T) {
		type cachedConfig struct {
			Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:""`
		}

		t.Setenv("CONFIG_TEST_CACHED_NAME", "first")
		var cfg1 cachedConfig
		require.NoError(t, config.Load(&cfg1))
		require.Equal(t, "first", cfg1.Name)

		t.Setenv("CONFIG_TEST_CACHED_NAME", "second")
		var cfg2 cachedConfig
		require.NoError(t, config.Load(&cfg2))
		assert.Equal(t, "first", cfg2.Name, "cached value survives environment changes")
		assert.Equal(t, cfg1, cfg2)
	})

	t.Run("rejects nil target", func(t *testing.T) {
		type nilConfig struct {
			Name string `env:"CONFIG_TEST_NIL_NAME" envDefault:""`
		}

		err := config.Load[nilConfig](nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be nil")
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns loaded config", func(t *testing.T) {
		type mustConfig struct {
			Dir string `env:"CONFIG_TEST_MUST_DIR" envDefault:"/srv/locale"`
		}

		var cfg mustConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "/srv/locale", cfg.Dir)
	})

	t.Run("panics when loading fails", func(t *testing.T) {
		type mustFailConfig struct {
			Token string `env:"CONFIG_TEST_MUST_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg mustFailConfig
			config.MustLoad(&cfg)
		})
	})
}
