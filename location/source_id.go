package location

import (
	"path/filepath"

	"github.com/google/uuid"
)

// SourceID identifies the origin of a compiled BEL document.
//
// A SourceID can represent a file-backed source (the script's path, cleaned
// via filepath.Clean) or a synthetic source such as "<stdin>" or
// "inline:test". SourceID is a value type with an unexported field; always
// pass by value. The zero value is invalid — use IsZero() to check.
//
// SourceID is comparable and safe for use as a map key.
type SourceID struct {
	identifier string
}

// NewSourceID creates a SourceID from an arbitrary identifier.
//
// Recommended synthetic identifier patterns:
//   - "<stdin>" for data read from standard input
//   - "inline:fixture" for inline test fixtures
//
// An empty identifier produces a zero-value (invalid) SourceID.
func NewSourceID(identifier string) SourceID {
	return SourceID{identifier: identifier}
}

// SourceIDFromPath creates a file-backed SourceID from a filesystem path,
// cleaning it (normalizing "." and ".." segments and separators) so that
// two different spellings of the same path compare equal.
func SourceIDFromPath(path string) SourceID {
	return SourceID{identifier: filepath.ToSlash(filepath.Clean(path))}
}

// NewSyntheticSourceID mints a fresh SourceID for a BEL source with no
// natural path (inline text, stdin, a programmatically assembled line
// slice), tagging it so it cannot collide with a file-backed SourceID or
// with another synthetic source compiled in the same process.
func NewSyntheticSourceID() SourceID {
	return SourceID{identifier: "inline:" + uuid.New().String()}
}

// String returns the source identifier.
func (s SourceID) String() string {
	return s.identifier
}

// IsZero reports whether this is a zero-value SourceID.
func (s SourceID) IsZero() bool {
	return s.identifier == ""
}
