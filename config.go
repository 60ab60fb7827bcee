package atheme

import "github.com/interiortechnologyinc/atheme/core/locale"

// Config is the environment-driven configuration for a translation Core.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"atheme"`
	Env     string `env:"APP_ENV" envDefault:"development"`

	// Language selects the catalog loaded into the display table at
	// startup. Empty or the builtin language loads nothing: source strings
	// are already in the builtin language.
	Language string `env:"APP_LANGUAGE" envDefault:""`

	Locale locale.Config
}

func (c Config) isProduction() bool {
	return c.Env == "production"
}
