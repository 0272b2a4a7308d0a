package entity

import "github.com/belgraph/bel/concept"

// SimpleAbundance is a single-concept entity: small molecule, gene, RNA,
// microRNA, protein, biological process, pathology, or population
// (spec.md §3.1). CentralDogma functions (Gene, Rna, MicroRna, Protein) may
// carry an ordered list of Variants; Location, when present, originates from
// a `loc(ns:name)` argument inside the term and is part of node identity.
type SimpleAbundance struct {
	fn       Function
	concept  concept.Concept
	variants []Variant
	location concept.Concept
}

// NewSimpleAbundance constructs a SimpleAbundance. variants is copied
// defensively; pass nil for functions that do not carry variants.
func NewSimpleAbundance(fn Function, c concept.Concept, variants []Variant, location concept.Concept) SimpleAbundance {
	var vs []Variant
	if len(variants) > 0 {
		vs = make([]Variant, len(variants))
		copy(vs, variants)
	}
	return SimpleAbundance{fn: fn, concept: c, variants: vs, location: location}
}

// Function implements [Entity].
func (e SimpleAbundance) Function() Function { return e.fn }

// Concept returns the entity's concept identity.
func (e SimpleAbundance) Concept() concept.Concept { return e.concept }

// Variants returns the entity's ordered variant list (nil if none).
func (e SimpleAbundance) Variants() []Variant { return e.variants }

// Location returns the entity's location decorator, or the zero Concept.
func (e SimpleAbundance) Location() concept.Concept { return e.location }

// Parent returns e with its variant list cleared, used to compute the
// `hasVariant` inference target (spec.md §3.3 invariant 5).
func (e SimpleAbundance) Parent() SimpleAbundance {
	return SimpleAbundance{fn: e.fn, concept: e.concept, location: e.location}
}

// Canonical implements [Entity]. Variants are sorted by their own canonical
// form before joining (spec.md §4.5, §8 property 2 does not apply to
// variant ordering directly but the same sort-before-hash discipline is used
// for determinism).
func (e SimpleAbundance) Canonical() string {
	parts := []string{e.fn.String() + "(" + e.concept.Namespace() + ":" + quote(e.concept.Value())}
	if len(e.variants) > 0 {
		forms := make([]string, len(e.variants))
		for i, v := range e.variants {
			forms[i] = v.Canonical()
		}
		sortedCanonical(forms)
		parts = append(parts, forms...)
	}
	if !e.location.IsZero() {
		parts = append(parts, "loc("+e.location.Namespace()+":"+quote(e.location.Value())+")")
	}
	return joinCanonical(parts) + ")"
}

// Hash implements [Entity].
func (e SimpleAbundance) Hash() [64]byte {
	return Hash(e.Canonical())
}
