// Package directive dispatches the control-statement grammar (SET, DEFINE,
// UNSET) against a per-compilation [Context]. Everything that is not one of
// these forms is a BEL term/relation statement and falls through to the
// parser package (spec.md §4.2's "anything else" rule, surfaced here as
// [Dispatch] returning false).
package directive
