// Package locale maintains the registry of languages known to the process.
//
// A language is known once a catalog directory bearing its name has been
// seen, or once another subsystem registers the name explicitly. Every
// registry starts with the builtin DefaultLanguage marked valid, so a
// deployment with no catalogs at all still reports one usable language.
//
// The registry is populated once, at construction:
//
//	registry, err := locale.New(locale.WithCatalogDir("/var/lib/services/locale"))
//
// Discovery walks the catalog directory's immediate entries; hidden names
// and the reserved bookkeeping entries (all_languages, locale.alias) never
// become languages. A missing or unreadable directory is tolerated, the
// registry then knows only the builtin language.
//
// Records are never removed and a valid record never becomes invalid, so
// pointers returned by Find and Match stay usable for the process
// lifetime. Registration order is preserved: Languages and ValidNames
// iterate in the order records were added, builtin first.
//
// Match selects the best valid language for an Accept-Language header
// using BCP 47 matching, falling back to the builtin language when
// nothing fits.
package locale
