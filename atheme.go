package atheme

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/interiortechnologyinc/atheme/core/catalog"
	"github.com/interiortechnologyinc/atheme/core/config"
	"github.com/interiortechnologyinc/atheme/core/locale"
	"github.com/interiortechnologyinc/atheme/core/logger"
	"github.com/interiortechnologyinc/atheme/core/translate"
)

// Core is the process-wide translation context: the internal and language
// replacement tables, the translator resolving through them, and the
// registry of known languages. It is built explicitly and handed to
// callers rather than living in package state, so tests and embedders can
// run isolated instances side by side.
type Core struct {
	config     Config
	log        *slog.Logger
	internal   *translate.Table
	language   *translate.Table
	translator *translate.Translator
	registry   *locale.Registry
	loader     *catalog.Loader
}

// Option configures a Core during construction.
type Option func(*Core) error

// WithLogger replaces the logger derived from APP_ENV.
func WithLogger(log *slog.Logger) Option {
	return func(c *Core) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		c.log = log
		return nil
	}
}

// WithRegistry replaces the registry built from the locale configuration.
func WithRegistry(registry *locale.Registry) Option {
	return func(c *Core) error {
		if registry == nil {
			return errors.New("registry cannot be nil")
		}
		c.registry = registry
		return nil
	}
}

// WithLoader replaces the default catalog loader.
func WithLoader(loader *catalog.Loader) Option {
	return func(c *Core) error {
		if loader == nil {
			return errors.New("loader cannot be nil")
		}
		c.loader = loader
		return nil
	}
}

// New loads Config from the environment and assembles a Core from it.
func New(opts ...Option) (*Core, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig assembles a Core: a verbatim internal table, an
// escape-decoding language table, the translator over both, and a language
// registry discovered from the configured catalog directory. When
// cfg.Language names a non-builtin language, its catalog is loaded into
// the language table before NewFromConfig returns.
func NewFromConfig(cfg Config, opts ...Option) (*Core, error) {
	core := &Core{
		config:   cfg,
		internal: translate.NewTable(),
		language: translate.NewTable(translate.WithEscapeDecoding()),
	}
	core.translator = translate.New(core.internal, core.language)

	if cfg.isProduction() {
		core.log = logger.New(logger.WithProduction(cfg.AppName))
	} else {
		core.log = logger.New(logger.WithDevelopment(cfg.AppName))
	}

	for _, opt := range opts {
		if err := opt(core); err != nil {
			return nil, err
		}
	}

	if core.registry == nil {
		registry, err := locale.NewFromConfig(cfg.Locale,
			locale.WithLogger(core.log.With(logger.Component("locale"))))
		if err != nil {
			return nil, err
		}
		core.registry = registry
	}

	if core.loader == nil {
		loader, err := catalog.NewLoader(
			catalog.WithLogger(core.log.With(logger.Component("catalog"))))
		if err != nil {
			return nil, err
		}
		core.loader = loader
	}

	if cfg.Language != "" && cfg.Language != locale.DefaultLanguage {
		if err := core.LoadLanguage(cfg.Language); err != nil {
			return nil, err
		}
	}

	core.log.Debug("translation core ready",
		logger.Event("startup"),
		logger.Count("languages", len(core.registry.Languages())),
		slog.String("valid", core.registry.ValidNames()))

	return core, nil
}

// Translate resolves s through the internal and language tables, returning
// s unchanged when neither resolves it.
func (c *Core) Translate(s string) string {
	return c.translator.Translate(s)
}

// LoadLanguage populates the language table from the named language's
// catalog directory. The language must be registered and valid, and a
// catalog directory must be configured. Loaded entries overlay earlier
// ones, so switching languages means loading the new catalog over the old
// table or starting from a fresh Core.
func (c *Core) LoadLanguage(name string) error {
	start := time.Now()

	lang, ok := c.registry.Find(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}
	if !lang.Valid() {
		return fmt.Errorf("%w: %s", ErrNoCatalog, name)
	}
	if c.config.Locale.CatalogDir == "" {
		return ErrNoCatalogDir
	}

	dir := filepath.Join(c.config.Locale.CatalogDir, name)
	if err := c.loader.LoadDir(c.language, dir); err != nil {
		return fmt.Errorf("failed to load language %s: %w", name, err)
	}

	c.log.Info("language catalog loaded",
		logger.Language(name),
		logger.Count("entries", c.language.Len()),
		logger.Elapsed(start))
	return nil
}

// InternalTable returns the verbatim priority table consulted first during
// translation. Subsystems register their short code identifiers here.
func (c *Core) InternalTable() *translate.Table {
	return c.internal
}

// LanguageTable returns the display table holding the active language's
// translations. Inserts decode the \2 escape convention.
func (c *Core) LanguageTable() *translate.Table {
	return c.language
}

// Languages returns the registry of known languages.
func (c *Core) Languages() *locale.Registry {
	return c.registry
}

// Logger returns the core's logger.
func (c *Core) Logger() *slog.Logger {
	return c.log
}
