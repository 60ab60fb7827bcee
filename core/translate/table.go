package translate

import "strings"

// MaxEntryLen bounds stored keys and replacements in bytes. Longer values
// are truncated silently at insertion.
const MaxEntryLen = 1024

const (
	// boldEscape is the producer-side escape sequence: a literal backslash
	// followed by the digit '2'.
	boldEscape = "\\2"

	// boldMarker is the wire form boldEscape decodes to, the IRC bold
	// toggle control byte.
	boldMarker = "\x02"
)

// Table is an exact-match string replacement cache. The zero configuration
// stores entries verbatim; tables built with WithEscapeDecoding rewrite the
// \2 escape in keys and replacements at insertion time. Lookups never
// rewrite their argument, so a decoded key is found only by its decoded
// form.
//
// Read operations tolerate a nil receiver and behave as an empty table.
type Table struct {
	entries       map[string]string
	decodeEscapes bool
}

// TableOption configures a Table during construction.
type TableOption func(*Table)

// WithEscapeDecoding makes the table rewrite every literal \2 sequence in
// inserted keys and replacements to the control byte 0x02. Display-facing
// tables use this so catalog authors can write bold markers without
// embedding raw control bytes in their files.
func WithEscapeDecoding() TableOption {
	return func(t *Table) {
		t.decodeEscapes = true
	}
}

// NewTable creates an empty replacement cache.
func NewTable(opts ...TableOption) *Table {
	t := &Table{
		entries: make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Set stores replacement under name, overwriting any existing entry. Both
// strings are truncated to MaxEntryLen bytes and, on escape-decoding
// tables, rewritten before storage. Truncation is silent.
func (t *Table) Set(name, replacement string) {
	t.entries[t.normalize(name)] = t.normalize(replacement)
}

// Get returns the replacement stored under name. The second return value
// reports whether an entry matched; absence is not an error.
func (t *Table) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	replacement, ok := t.entries[name]
	return replacement, ok
}

// Delete removes the entry stored under name. Deleting an absent name is a
// no-op.
func (t *Table) Delete(name string) {
	if t == nil {
		return
	}
	delete(t.entries, name)
}

// Len reports the number of stored entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// normalize applies the insertion rules in order: truncate to the entry
// bound first, then decode escapes, so an escape pair straddling the bound
// degrades exactly as a fixed-size buffer copy would.
func (t *Table) normalize(s string) string {
	if len(s) > MaxEntryLen {
		s = s[:MaxEntryLen]
	}
	if t.decodeEscapes {
		s = strings.ReplaceAll(s, boldEscape, boldMarker)
	}
	return s
}
