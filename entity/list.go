package entity

import "github.com/belgraph/bel/concept"

// ListAbundance is a collection entity: ComplexAbundance (`complex(...)`) or
// CompositeAbundance (`composite(...)`), each holding an ordered set of
// member entities. Duplicate members (by canonical form) are de-duplicated
// on insertion. A ComplexAbundance may additionally carry a named Concept
// (a named complex, e.g. `complex(GO:"AP-1 complex")`).
type ListAbundance struct {
	fn      Function
	members []Entity
	named   concept.Concept
}

// NewListAbundance constructs a ListAbundance, de-duplicating members whose
// canonical forms are byte-equal. named may be the zero Concept for
// unnamed complexes and all composites.
func NewListAbundance(fn Function, members []Entity, named concept.Concept) ListAbundance {
	seen := make(map[string]bool, len(members))
	deduped := make([]Entity, 0, len(members))
	for _, m := range members {
		key := m.Canonical()
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, m)
	}
	return ListAbundance{fn: fn, members: deduped, named: named}
}

// Function implements [Entity].
func (e ListAbundance) Function() Function { return e.fn }

// Members returns the de-duplicated member list, in insertion order.
func (e ListAbundance) Members() []Entity { return e.members }

// Named returns the complex's named Concept, or the zero Concept if unnamed.
func (e ListAbundance) Named() concept.Concept { return e.named }

// Canonical implements [Entity]. Members are sorted by canonical form so
// that member-ordering is not observable in the hash (spec.md §8 property 2).
// A named complex's name precedes its member list.
func (e ListAbundance) Canonical() string {
	var parts []string
	if !e.named.IsZero() {
		parts = append(parts, e.named.Namespace()+":"+quote(e.named.Value()))
	}
	forms := make([]string, len(e.members))
	for i, m := range e.members {
		forms[i] = m.Canonical()
	}
	sortedCanonical(forms)
	parts = append(parts, forms...)
	return e.fn.String() + "(" + joinCanonical(parts) + ")"
}

// Hash implements [Entity].
func (e ListAbundance) Hash() [64]byte {
	return Hash(e.Canonical())
}
