// Package parser implements the BEL Term & Relation Parser (spec.md §4.4): a
// hand-written recursive-descent grammar over a logical BEL statement line,
// producing [entity.Entity], [relation.Relation], and [relation.Modifier]
// values for the graph package's insertion protocol.
//
// The grammar is unambiguous with one token of lookahead (spec.md §9), so
// this package scans the statement text directly by byte position, in the
// style of the teacher's instance/path parser: small `parseX(s, pos)
// (value, newPos, error)` helpers composed by a stateful [Parser] that
// tracks its own cursor instead of threading (s, pos) through every call.
package parser
