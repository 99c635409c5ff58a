package pb

import (
	"fmt"
	"strings"
)

// ConfigError is returned when a bar is constructed with invalid options,
// e.g. an unknown style name or an empty custom glyph ramp. It is never
// returned after construction.
type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func newConfigError(format string, a ...interface{}) ConfigError {
	return ConfigError{msg: fmt.Sprintf(format, a...)}
}

func newUnknownStyleError(name string) ConfigError {
	return newConfigError("unknown style %q, available styles: %s",
		name, strings.Join(StyleNames(), ", "))
}

// RangeError is returned by MultiProgress.Update when the row index is
// outside of [0, count).
type RangeError struct {
	Index, Count int
}

func (e RangeError) Error() string {
	return fmt.Sprintf("index %d out of range (0-%d)", e.Index, e.Count-1)
}
