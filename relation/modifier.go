package relation

import "github.com/belgraph/bel/concept"

// ModifierKind discriminates the Modifier sum type.
type ModifierKind uint8

const (
	NoModifier ModifierKind = iota
	ActivityModifier
	DegradationModifier
	TranslocationModifier
)

// Modifier is a tagged variant attached to one side of an edge (subject or
// object), produced by the `act(...)`, `deg(...)`, and `tloc(...)` subject/
// object modifier forms (and their shorthands `sec`/`surf`).
//
// A Modifier may additionally carry a Location decorator, independent of
// which Kind it is; Location is therefore a field on Modifier rather than a
// fourth ModifierKind.
type Modifier struct {
	Kind ModifierKind

	// Effect is the optional molecular-activity concept for ActivityModifier
	// (e.g. "kin" kinase activity). Zero value means unqualified activity.
	Effect concept.Concept

	// FromLocation and ToLocation are the source/destination compartments for
	// TranslocationModifier. Both are required unless the modifier was
	// produced by a shorthand (sec/surf), which fix them to known values.
	FromLocation concept.Concept
	ToLocation   concept.Concept

	// Location decorates the participant regardless of Kind; it is set via
	// [Modifier.WithLocation] or by the nodelink decoder. The parser records
	// a term's `loc(ns:name)` argument on the entity, not here.
	Location concept.Concept
}

// Activity constructs an ActivityModifier, optionally qualified with an
// effect concept (e.g. kinase activity, transcriptional activity).
func Activity(effect concept.Concept) Modifier {
	return Modifier{Kind: ActivityModifier, Effect: effect}
}

// Degradation constructs a DegradationModifier. Degradation carries no effect field.
func Degradation() Modifier {
	return Modifier{Kind: DegradationModifier}
}

// Translocation constructs a TranslocationModifier between two compartments.
func Translocation(from, to concept.Concept) Modifier {
	return Modifier{Kind: TranslocationModifier, FromLocation: from, ToLocation: to}
}

// WithLocation returns a copy of m with its Location decorator set.
func (m Modifier) WithLocation(loc concept.Concept) Modifier {
	m.Location = loc
	return m
}

// IsZero reports whether m carries no modifier information at all (no kind,
// no location decorator).
func (m Modifier) IsZero() bool {
	return m.Kind == NoModifier && m.Location.IsZero()
}

// intracellular, extracellular, and cellSurface are the fixed compartment
// concepts for the `sec` and `surf` shorthand translocation forms
// (spec.md §4.4.2).
var (
	intracellular = concept.MustNew("MESHCS", "", "Intracellular Space")
	extracellular = concept.MustNew("MESHCS", "", "Extracellular Space")
	cellSurface   = concept.MustNew("MESHCS", "", "Cell Surface")
)

// Secreted constructs the `sec(term)` shorthand: intracellular -> extracellular.
func Secreted() Modifier {
	return Translocation(intracellular, extracellular)
}

// SurfaceExpressed constructs the `surf(term)` shorthand: intracellular -> cell surface.
func SurfaceExpressed() Modifier {
	return Translocation(intracellular, cellSurface)
}
