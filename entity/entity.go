// Package entity implements the BEL typed abstract domain model: the closed
// sum type of graph vertices (spec.md §3.1) and the Variant sum type attached
// to CentralDogma-bearing entities.
//
// Each concrete type is a value object: constructed once via its
// constructor function, immutable thereafter, and compared for equality by
// canonical form. Canonical-form construction and SHA-512 hashing are
// implemented directly on each type (not delegated to a separate visitor),
// following the teacher's closed-sum-type-with-methods idiom rather than an
// inheritance hierarchy.
package entity

import (
	"crypto/sha512"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entity is implemented by every concrete BEL graph vertex type:
// [SimpleAbundance], [ListAbundance], [Reaction], and [Fusion].
type Entity interface {
	// Function returns the BEL function tag for this entity.
	Function() Function

	// Canonical returns the deterministic canonical-form string used for
	// hashing and serialization (spec.md §4.5).
	Canonical() string

	// Hash returns the SHA-512 digest of the UTF-8 canonical form. Two
	// entities with byte-equal canonical forms always have equal hashes.
	Hash() [64]byte
}

// Hash computes the SHA-512 digest of a canonical form string. Exported so
// the graph and canon packages can hash edge data consistently with node
// hashing without duplicating the algorithm choice.
func Hash(canonical string) [64]byte {
	return sha512.Sum512([]byte(canonical))
}

// quote NFC-normalizes s and renders it as a double-quoted BEL string
// literal, escaping embedded quotes and backslashes. Used for every name or
// identifier that appears inside a canonical form.
func quote(s string) string {
	normalized := norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(normalized) + 2)
	b.WriteByte('"')
	for _, r := range normalized {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// quoteBareOrRange renders a range endpoint that is an integer or the "?"
// sentinel without quoting, and quotes any other value. No canonical form in
// this package calls it: fusion ranges and fragment ranges are rendered with
// [quote].
func quoteBareOrRange(s string) string {
	if s == "?" {
		return s
	}
	if _, err := strconv.Atoi(s); err == nil {
		return s
	}
	return quote(s)
}

// sortedCanonical sorts a slice of canonical-form strings in place and
// returns it, for the member-ordering-independence rule (spec.md §8 property
// 2): ComplexAbundance/CompositeAbundance members and sets of variants are
// sorted by their own canonical form before joining.
func sortedCanonical(forms []string) []string {
	sort.Strings(forms)
	return forms
}

func joinCanonical(parts []string) string {
	return strings.Join(parts, ", ")
}
