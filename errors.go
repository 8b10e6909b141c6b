// FILE: lixenwraith/dotconf/errors.go
package dotconf

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrNotConfigured is returned by typed getters when the requested path is absent.
	ErrNotConfigured = errors.New("path not configured")

	// ErrNotMapping is returned when a document's top level is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")

	// ErrInvalidTemplate is returned for a discovery template without {name} or with unknown placeholders.
	ErrInvalidTemplate = errors.New("invalid path template")

	// ErrUnknownFormat is returned for a format name that is not supported.
	ErrUnknownFormat = errors.New("unknown configuration format")

	// ErrCLIParse is returned when command-line arguments cannot be parsed into configuration.
	ErrCLIParse = errors.New("failed to parse command-line arguments")
)

// ParseError occurs when an input document is not valid under the selected format.
// Source names the failing input: a file path, a reader's name or its position in the call.
type ParseError struct {
	Source string
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s config '%s': %s", e.Format.label(), e.Source, e.Err)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
