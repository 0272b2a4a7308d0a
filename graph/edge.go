package graph

import (
	"github.com/belgraph/bel/relation"
)

// Edge is one directed edge of a Graph, keyed by its content hash
// (spec.md §3.2): a (source, target, relation) triple plus the qualifying
// metadata (citation, evidence, annotations) required of qualified edges.
//
// Unqualified edges (spec.md §3.3 invariant 2) leave Citation zero, Evidence
// empty, and Annotations nil; they exist only as inference edges or as
// explicit unqualified relations (hasVariant, hasComponent, hasMember,
// hasReactant, hasProduct, transcribedTo, translatedTo, equivalentTo,
// partOf).
//
// Edge is safe for concurrent read access. Edges are accessed via
// [Graph.Edges].
type Edge struct {
	relation relation.Relation
	source   *Node
	target   *Node

	sourceModifier relation.Modifier
	targetModifier relation.Modifier

	citation    Citation
	evidence    string
	annotations map[string][]string

	line      int
	qualified bool

	hash [64]byte
}

// Relation returns e's relation, or the zero Relation if e is nil.
func (e *Edge) Relation() relation.Relation {
	if e == nil {
		return 0
	}
	return e.relation
}

// Source returns e's source node, or nil if e is nil.
func (e *Edge) Source() *Node {
	if e == nil {
		return nil
	}
	return e.source
}

// Target returns e's target node, or nil if e is nil.
func (e *Edge) Target() *Node {
	if e == nil {
		return nil
	}
	return e.target
}

// SourceModifier returns e's source activity/translocation/degradation
// modifier, or the zero Modifier if e is nil.
func (e *Edge) SourceModifier() relation.Modifier {
	if e == nil {
		return relation.Modifier{}
	}
	return e.sourceModifier
}

// TargetModifier returns e's target modifier, or the zero Modifier if e is
// nil.
func (e *Edge) TargetModifier() relation.Modifier {
	if e == nil {
		return relation.Modifier{}
	}
	return e.targetModifier
}

// Citation returns e's citation, or the zero Citation if e is nil.
func (e *Edge) Citation() Citation {
	if e == nil {
		return Citation{}
	}
	return e.citation
}

// Evidence returns e's evidence text, or "" if e is nil.
func (e *Edge) Evidence() string {
	if e == nil {
		return ""
	}
	return e.evidence
}

// Annotations returns a defensive copy of e's annotation sets, or nil if e
// is nil or carries none.
func (e *Edge) Annotations() map[string][]string {
	if e == nil || e.annotations == nil {
		return nil
	}
	out := make(map[string][]string, len(e.annotations))
	for k, vs := range e.annotations {
		cp := make([]string, len(vs))
		copy(cp, vs)
		out[k] = cp
	}
	return out
}

// Line returns the originating line number, or 0 if e is nil.
func (e *Edge) Line() int {
	if e == nil {
		return 0
	}
	return e.line
}

// Qualified reports whether e carries citation and evidence, or false if e
// is nil.
func (e *Edge) Qualified() bool {
	if e == nil {
		return false
	}
	return e.qualified
}

// Hash returns e's content hash, or the zero hash if e is nil.
func (e *Edge) Hash() [64]byte {
	if e == nil {
		return [64]byte{}
	}
	return e.hash
}

// newEdge builds an Edge from its already-validated components. hash is the
// content hash computed by the caller via canon.HashEdge.
func newEdge(rel relation.Relation, source, target *Node, sourceMod, targetMod relation.Modifier, citation Citation, evidence string, annotations map[string][]string, line int, qualified bool, hash [64]byte) *Edge {
	return &Edge{
		relation:       rel,
		source:         source,
		target:         target,
		sourceModifier: sourceMod,
		targetModifier: targetMod,
		citation:       citation,
		evidence:       evidence,
		annotations:    annotations,
		line:           line,
		qualified:      qualified,
		hash:           hash,
	}
}
