package catalog

import "errors"

var (
	// ErrUnsupportedFormat is returned when a file's extension has no
	// registered unmarshal function.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)
