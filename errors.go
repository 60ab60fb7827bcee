package atheme

import "errors"

var (
	// ErrUnknownLanguage is returned when a catalog load names a language
	// that was never registered.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrNoCatalog is returned when the named language is registered but
	// no catalog was discovered for it.
	ErrNoCatalog = errors.New("no catalog for language")

	// ErrNoCatalogDir is returned when a catalog load is requested without
	// a configured catalog directory.
	ErrNoCatalogDir = errors.New("no catalog directory configured")
)
