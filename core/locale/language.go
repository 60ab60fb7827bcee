package locale

// DefaultLanguage is the builtin language every registry starts with. It
// is always valid, even when no catalog directory exists, because the
// source strings themselves are written in it.
const DefaultLanguage = "en"

// Language is one registry record: a catalog name and whether a catalog
// was actually discovered under it. Records are created by the registry,
// never removed, and never transition from valid back to invalid.
type Language struct {
	name  string
	valid bool
}

// Name returns the catalog name the language was registered under.
func (l *Language) Name() string {
	return l.name
}

// Valid reports whether a catalog was discovered for the language, as
// opposed to a name that was merely registered by some subsystem.
func (l *Language) Valid() bool {
	return l.valid
}
