// Package catalog loads per-language translation files into replacement
// tables.
//
// A catalog file is a flat map of source string to translated string, in
// TOML, YAML or JSON. The loader only decodes and feeds pairs; insertion
// rules such as escape decoding and truncation belong to the target table:
//
//	loader, _ := catalog.NewLoader()
//	table := translate.NewTable(translate.WithEscapeDecoding())
//	if err := loader.LoadDir(table, "/var/lib/services/locale/de"); err != nil {
//		return err
//	}
//
// Unlike language discovery, loading is strict: unreadable files and parse
// failures are reported, not swallowed.
package catalog
