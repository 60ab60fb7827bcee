// Package atheme provides the translation subsystem of an IRC services
// deployment: replacement tables for user-facing strings, a two-stage
// translator, and a registry of languages discovered from catalog
// directories on disk. The library implements modern Go patterns including
// functional options for configuration and explicit construction for
// testability.
//
// # Package Organization
//
// The module is organized around one facade and a set of core packages:
//
//	github.com/interiortechnologyinc/atheme                - Core facade wiring tables, translator and registry
//	github.com/interiortechnologyinc/atheme/core/translate - Exact-match replacement tables and the translator
//	github.com/interiortechnologyinc/atheme/core/locale    - Language registry, discovery and Accept-Language matching
//	github.com/interiortechnologyinc/atheme/core/catalog   - Catalog file loading (TOML, YAML, JSON)
//	github.com/interiortechnologyinc/atheme/core/config    - Type-safe environment variable loading
//	github.com/interiortechnologyinc/atheme/core/logger    - Structured logging built on slog
//
// # Getting Started
//
// Core carries no global state. Construct one per process (or per test)
// and pass it where translation is needed:
//
//	core, err := atheme.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(core.Translate("Channel is frozen"))
//
// New reads configuration from the environment:
//
//	APP_NAME            application name tag on log records
//	APP_ENV             development (default) or production
//	APP_LANGUAGE        language catalog loaded at startup, empty for none
//	LOCALE_CATALOG_DIR  directory scanned for language catalogs
//
// NewFromConfig skips the environment and takes the Config directly, which
// is the natural entry point for tests.
//
// # Translation Model
//
// Two tables back every lookup. The internal table maps short code
// identifiers, registered by subsystems at startup, to canonical strings;
// the language table maps canonical strings to the active language's
// translations and decodes the \2 bold escape at insert. Translate
// consults the internal table first and the language table second, and
// returns its input unchanged whenever the language table has no answer,
// so untranslated deployments behave as identity.
//
// # Languages
//
// The registry discovers languages by listing the catalog directory once
// at startup. The builtin "en" is always present and valid, so a
// deployment with no catalogs still runs, and a missing or unreadable
// catalog directory is tolerated. See core/locale for matching and
// registration details.
package atheme
