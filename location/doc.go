// Package location provides source location tracking for diagnostics.
//
// This package defines the core types used by the BEL diagnostic system
// to track source locations. It sits at the foundation tier and can be
// imported by all other packages without introducing circular dependencies.
//
// # SourceID
//
// SourceID identifies a source uniquely within a compilation. It supports
// two modes:
//   - File-backed: created via SourceIDFromPath, which cleans the path so
//     two spellings of the same path compare equal.
//   - Synthetic: created via NewSourceID for non-file sources like
//     "<stdin>" or "inline:test".
//
// SourceID is comparable and safe for use as a map key.
//
// # Position
//
// Position identifies a point in a UTF-8 encoded source file:
//   - Line: 1-based line number (0 = unknown)
//   - Column: 1-based column counting Unicode code points (runes), not bytes
//   - Byte: 0-based byte offset (-1 = unknown)
//
// Use IsZero() to check for unknown positions, IsKnown() to check for valid
// line/column, and HasByte() to check for known byte offsets.
//
// # Span
//
// Span represents a half-open range [Start, End) in a source file:
//   - Source: SourceID identifying the source
//   - Start: Inclusive start position
//   - End: Exclusive end position (equals Start for point spans)
//
// Create spans via Point, PointWithByte, Range, or RangeWithBytes. The Range
// constructors panic if end < start (geometric soundness invariant).
//
// Use IsZero() to check for "no location", IsValid() to check for LSP
// compatibility, and IsGeometricallySafe() to validate spans from untrusted
// sources.
//
// # RelatedInfo
//
// RelatedInfo provides supplementary location context for diagnostics, such
// as "previous definition here" for duplicate annotation errors or pointing
// at the citation that set a value. Use the Msg* constants for consistent
// message formatting.
//
// # Dependencies
//
// This package depends on the standard library and on github.com/google/uuid,
// which [NewSyntheticSourceID] uses. It does not import any other package in
// this module, enabling it to be imported everywhere else without cycles.
package location
