// Package canon implements the edge side of BEL's canonicalization and
// hashing rules (spec.md §4.5). Node canonical-form construction and
// hashing live directly on each [entity.Entity] implementation; canon picks
// up from there to hash the surrounding edge data, which is not itself an
// Entity.
//
// canon sits below graph in the dependency order (Graph Model ← Canonicalizer):
// graph constructs an [EdgeInput] from its own Citation/annotation types and
// calls [HashEdge]; canon never imports graph.
package canon

import (
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/belgraph/bel/relation"
)

// EdgeCitation is the minimal citation shape that participates in edge
// identity: (type, reference). Parsed metadata (title, date, authors) does
// not affect the hash.
type EdgeCitation struct {
	Type      string `json:"type,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// EdgeInput is the full set of edge-data fields that participate in the
// content hash, per spec.md §4.5: relation, both modifiers, citation,
// evidence, sorted annotations, and the two endpoint node hashes. The line
// number is deliberately excluded.
type EdgeInput struct {
	Relation       string
	SourceModifier string
	TargetModifier string
	Citation       EdgeCitation
	Evidence       string
	// Annotations maps annotation keyword to its set of values. Each value
	// slice need not be pre-sorted; HashEdge sorts both the keys (via
	// encoding/json's map-key ordering) and each value slice before hashing.
	Annotations map[string][]string
	SourceHash  string
	TargetHash  string
}

// canonicalEdge is the JSON shape actually hashed. Field order is fixed by
// struct declaration order; encoding/json sorts map keys for the
// Annotations field automatically, giving the lexicographic-by-key
// ordering spec.md §4.5 requires.
type canonicalEdge struct {
	Relation       string              `json:"relation"`
	SourceModifier string              `json:"source_modifier,omitempty"`
	TargetModifier string              `json:"target_modifier,omitempty"`
	Citation       EdgeCitation        `json:"citation"`
	Evidence       string              `json:"evidence"`
	Annotations    map[string][]string `json:"annotations,omitempty"`
	SourceHash     string              `json:"source_hash"`
	TargetHash     string              `json:"target_hash"`
}

// HashEdge computes the SHA-512 digest of the canonical JSON of in,
// matching spec.md §4.5's edge-hash rule. The hash excludes the originating
// line number, so idempotent re-insertion of the same qualified edge always
// maps to the same key regardless of where in the document it occurs.
func HashEdge(in EdgeInput) [64]byte {
	ce := canonicalEdge{
		Relation:       in.Relation,
		SourceModifier: in.SourceModifier,
		TargetModifier: in.TargetModifier,
		Citation:       in.Citation,
		Evidence:       in.Evidence,
		SourceHash:     in.SourceHash,
		TargetHash:     in.TargetHash,
	}
	if len(in.Annotations) > 0 {
		ce.Annotations = make(map[string][]string, len(in.Annotations))
		for k, values := range in.Annotations {
			sorted := make([]string, len(values))
			copy(sorted, values)
			sort.Strings(sorted)
			ce.Annotations[k] = sorted
		}
	}

	data, err := json.Marshal(ce)
	if err != nil {
		// canonicalEdge is built entirely from strings and string maps, so
		// marshaling cannot fail; a failure here indicates a programmer
		// error in the struct shape above.
		panic(fmt.Sprintf("canon: edge data is not JSON-marshalable: %v", err))
	}
	return sha512.Sum512(data)
}

// ModifierCanonical renders a [relation.Modifier] as the BEL subject/object
// modifier syntax it was parsed from, for use as EdgeInput's
// SourceModifier/TargetModifier. The zero Modifier renders as "".
func ModifierCanonical(m relation.Modifier) string {
	var s string
	switch m.Kind {
	case relation.ActivityModifier:
		if m.Effect.IsZero() {
			s = "act()"
		} else {
			s = "act(ma(" + m.Effect.Namespace() + ":" + quoteValue(m.Effect.Value()) + "))"
		}
	case relation.DegradationModifier:
		s = "deg()"
	case relation.TranslocationModifier:
		s = "tloc(fromLoc(" + m.FromLocation.Namespace() + ":" + quoteValue(m.FromLocation.Value()) +
			"), toLoc(" + m.ToLocation.Namespace() + ":" + quoteValue(m.ToLocation.Value()) + "))"
	}
	if !m.Location.IsZero() {
		locForm := "loc(" + m.Location.Namespace() + ":" + quoteValue(m.Location.Value()) + ")"
		if s == "" {
			return locForm
		}
		return s + ", " + locForm
	}
	return s
}

func quoteValue(s string) string {
	return `"` + s + `"`
}
