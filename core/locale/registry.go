package locale

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// MaxNamesLen bounds the ValidNames result in bytes. Longer lists are
// truncated silently; the value matches the fixed reply buffer of the
// services that display the list.
const MaxNamesLen = 512

// Reserved catalog directory entries that never name a language.
const (
	allLanguagesEntry = "all_languages"
	localeAliasEntry  = "locale.alias"
)

// Registry is the ordered collection of known languages. Discovery runs
// once during New, before concurrent access begins; Add and the valid
// flag mutate shared records, so concurrent mutation needs external
// synchronization.
type Registry struct {
	languages  []*Language
	catalogDir string
	logger     *slog.Logger
}

// Option configures the Registry during construction.
type Option func(*Registry) error

// WithCatalogDir sets the directory whose entries are discovered as valid
// languages during New.
func WithCatalogDir(dir string) Option {
	return func(r *Registry) error {
		if dir == "" {
			return fmt.Errorf("catalog directory cannot be empty")
		}
		r.catalogDir = dir
		return nil
	}
}

// WithLogger sets the logger for registration and discovery events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		r.logger = logger
		return nil
	}
}

// New creates a registry, registers the builtin DefaultLanguage as valid,
// and discovers languages from the configured catalog directory. A
// registry built without WithCatalogDir skips discovery and knows only the
// builtin language.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	r.Add(DefaultLanguage).valid = true

	if r.catalogDir != "" {
		r.discover()
	}

	return r, nil
}

// discover scans the catalog directory once and marks every non-reserved
// entry valid. Scan failure is tolerated: the builtin language stays the
// only valid one.
func (r *Registry) discover() {
	entries, err := os.ReadDir(r.catalogDir)
	if err != nil {
		r.logger.Debug("language catalog directory unavailable",
			slog.String("dir", r.catalogDir),
			slog.Any("error", err))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == allLanguagesEntry || name == localeAliasEntry {
			continue
		}
		r.Add(name).valid = true
	}
}

// Add returns the record registered under name, appending a new not-yet-
// valid record when the name is unknown. Re-adding a known name returns
// the existing record unchanged.
func (r *Registry) Add(name string) *Language {
	if lang, ok := r.Find(name); ok {
		return lang
	}

	r.logger.Debug("language registered", slog.String("language", name))

	lang := &Language{name: name}
	r.languages = append(r.languages, lang)
	return lang
}

// Find returns the record registered under name. Matching is exact and
// case-sensitive; the second return value reports whether the name is
// known.
func (r *Registry) Find(name string) (*Language, bool) {
	for _, lang := range r.languages {
		if lang.name == name {
			return lang, true
		}
	}
	return nil, false
}

// ValidNames returns the names of all valid languages, space-separated,
// in registration order. The result is truncated silently to MaxNamesLen
// bytes.
func (r *Registry) ValidNames() string {
	var b strings.Builder
	for _, lang := range r.languages {
		if !lang.valid {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(lang.name)
	}

	names := b.String()
	if len(names) > MaxNamesLen {
		names = names[:MaxNamesLen]
	}
	return names
}

// Languages returns the registered records in registration order. The
// slice is a fresh copy; the records themselves are shared.
func (r *Registry) Languages() []*Language {
	out := make([]*Language, len(r.languages))
	copy(out, r.languages)
	return out
}
