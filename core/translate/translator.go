package translate

// Translator resolves display strings through a two-stage chain: an
// internal table of short code identifiers consulted first, then the
// per-language display table. The translator reads both tables without
// owning them, so callers may keep populating the tables after
// construction.
type Translator struct {
	internal *Table
	language *Table
}

// New composes an internal (priority) table and a language (fallback)
// table into a Translator. Either table may be nil, in which case that
// stage never matches.
func New(internal, language *Table) *Translator {
	return &Translator{
		internal: internal,
		language: language,
	}
}

// Translate returns the display form of s.
//
// The internal table is consulted first. A hit there is an indirection,
// not an answer: its replacement becomes the key looked up in the language
// table. A language table hit is returned as the result. When the language
// table misses, the original input is returned unchanged, even if the
// internal stage matched; an internal rewrite is never exposed on its own.
func (tr *Translator) Translate(s string) string {
	input := s
	if replacement, ok := tr.internal.Get(s); ok {
		s = replacement
	}
	if replacement, ok := tr.language.Get(s); ok {
		return replacement
	}
	return input
}
