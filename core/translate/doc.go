// Package translate provides exact-match string replacement tables and a
// two-stage translator for resolving user-facing display strings.
//
// The package models the classic services translation scheme: an internal
// table rewrites short code identifiers into canonical strings, and a
// per-language display table maps canonical strings to their translations.
// A string that resolves through neither table is returned unchanged, so
// untranslated deployments behave as identity.
//
// # Tables
//
// A Table is a flat, exact-match cache. Keys are matched byte for byte:
// no case folding, no prefix matching. Tables come in two variants chosen
// at construction:
//
//	internal := translate.NewTable()                                // verbatim
//	display := translate.NewTable(translate.WithEscapeDecoding())   // decodes \2
//
// The escape-decoding variant rewrites every literal two-character sequence
// backslash+'2' in inserted keys and replacements to the single control
// byte 0x02, the bold toggle of the IRC display protocol. The rewrite
// happens once at insertion time; lookups never rewrite their argument.
//
// Keys and replacements are bounded by MaxEntryLen bytes and truncated
// silently, mirroring the fixed-size message buffers of the services the
// tables feed.
//
// # Translation
//
// A Translator composes an internal (priority) table with a language
// (fallback) table:
//
//	tr := translate.New(internal, display)
//	out := tr.Translate("Channel is frozen")
//
// Resolution consults the internal table first; a hit there is only an
// indirection whose result is then looked up in the language table. When
// the language table misses, the original input is returned unchanged,
// even if the internal stage matched.
//
// Tables and translators are not safe for concurrent mutation; populate
// them during startup or add external synchronization.
package translate
