package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/interiortechnologyinc/atheme/core/translate"
)

// UnmarshalFunc decodes one catalog file payload into v. The loader always
// passes a *map[string]string, so custom functions may assert that type
// directly.
type UnmarshalFunc func(data []byte, v any) error

// Loader reads catalog files and inserts their pairs into a translation
// table. Formats are picked by file extension; TOML, YAML and JSON are
// understood out of the box.
type Loader struct {
	formats map[string]UnmarshalFunc
	logger  *slog.Logger
}

// Option configures the Loader during construction.
type Option func(*Loader) error

// WithFormat registers or replaces the unmarshal function for a file
// extension. The extension is given without the leading dot and matched
// case-insensitively.
func WithFormat(ext string, fn UnmarshalFunc) Option {
	return func(l *Loader) error {
		if ext == "" {
			return fmt.Errorf("format extension cannot be empty")
		}
		if fn == nil {
			return fmt.Errorf("unmarshal function cannot be nil")
		}
		l.formats[strings.ToLower(ext)] = fn
		return nil
	}
}

// WithLogger sets the logger for load progress events.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a Loader with the default format set.
func NewLoader(opts ...Option) (*Loader, error) {
	l := &Loader{
		formats: map[string]UnmarshalFunc{
			"toml": toml.Unmarshal,
			"yaml": yaml.Unmarshal,
			"yml":  yaml.Unmarshal,
			"json": json.Unmarshal,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return l, nil
}

// LoadFile decodes one catalog file into table. The format is chosen by
// the file's extension; unknown extensions yield ErrUnsupportedFormat.
func (l *Loader) LoadFile(table *translate.Table, path string) error {
	fn, ok := l.formats[extensionOf(path)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	return l.loadFile(table, path, fn)
}

// LoadDir decodes every recognized catalog file directly inside dir into
// table, in lexical name order so duplicate keys resolve deterministically
// (the last file wins). Hidden entries, subdirectories and files with
// unregistered extensions are skipped. The first file that fails to load
// aborts the walk.
func (l *Loader) LoadDir(table *translate.Table, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read catalog directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		fn, ok := l.formats[extensionOf(name)]
		if !ok {
			l.logger.Debug("skipping unrecognized catalog file", slog.String("file", name))
			continue
		}
		if err := l.loadFile(table, filepath.Join(dir, name), fn); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) loadFile(table *translate.Table, path string, fn UnmarshalFunc) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	pairs := make(map[string]string)
	if err := fn(data, &pairs); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", filepath.Base(path), err)
	}

	for name, replacement := range pairs {
		table.Set(name, replacement)
	}

	l.logger.Debug("catalog file loaded",
		slog.String("file", filepath.Base(path)),
		slog.Int("entries", len(pairs)))
	return nil
}

// extensionOf returns the lowercased extension without the dot; empty when
// the name has none.
func extensionOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
