package locale

// Config provides environment-based configuration for the language
// registry.
type Config struct {
	CatalogDir string `env:"LOCALE_CATALOG_DIR" envDefault:""`
}

// NewFromConfig creates a Registry from configuration. An empty CatalogDir
// skips discovery, leaving only the builtin language.
func NewFromConfig(cfg Config, opts ...Option) (*Registry, error) {
	configOpts := make([]Option, 0, len(opts)+1)

	if cfg.CatalogDir != "" {
		configOpts = append(configOpts, WithCatalogDir(cfg.CatalogDir))
	}

	// Append user-provided options to override config
	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
