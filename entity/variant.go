package entity

import (
	"strconv"

	"github.com/belgraph/bel/concept"
)

// Variant is implemented by every concrete modification/alteration type
// attachable to a CentralDogma-bearing entity: [ProteinModification],
// [GeneModification], [HGVSVariant], and [Fragment].
type Variant interface {
	// Canonical returns the deterministic canonical-form string for this
	// variant, used both standalone (inside a term's canonical form) and as
	// a sort key among sibling variants.
	Canonical() string
}

// ProteinModification is a post-translational modification: `pmod(mod [,
// aminoAcid [, position]])`. Modification is either a default-vocabulary
// keyword (e.g. "Ph" for phosphorylation) or a namespaced Concept.
// AminoAcid, when present, is the three-letter code (legacy single-letter
// codes are normalized to three-letter during parse). Position is 0 when
// unset.
type ProteinModification struct {
	Modification concept.Concept
	AminoAcid    string
	Position     int
	HasPosition  bool
}

// Canonical renders "pmod(<mod>[, <aminoAcid>[, <position>]])".
func (v ProteinModification) Canonical() string {
	parts := []string{"pmod(" + modificationToken(v.Modification)}
	if v.AminoAcid != "" {
		parts = append(parts, v.AminoAcid)
		if v.HasPosition {
			parts = append(parts, strconv.Itoa(v.Position))
		}
	}
	return joinCanonical(parts) + ")"
}

// GeneModification is `gmod(modification)`.
type GeneModification struct {
	Modification concept.Concept
}

// Canonical renders "gmod(<mod>)".
func (v GeneModification) Canonical() string {
	return "gmod(" + modificationToken(v.Modification) + ")"
}

// HGVSVariant is a free-form HGVS variant description string: `var("...")`.
// Legacy `sub`/`trunc` forms are normalized to HGVSVariant during parse when
// a faithful HGVS rendering is possible (spec.md §4.4.1, §9).
type HGVSVariant struct {
	Description string
}

// Canonical renders `var("<description>")`.
func (v HGVSVariant) Canonical() string {
	return "var(" + quote(v.Description) + ")"
}

// Fragment is `frag("start_stop" [, "descriptor"])`. Start/Stop are either
// integer strings or the "?" sentinel.
type Fragment struct {
	Start      string
	Stop       string
	Descriptor string
}

// Canonical renders `frag("<start>_<stop>"[, "<descriptor>"])`.
func (v Fragment) Canonical() string {
	rangeStr := quote(v.Start + "_" + v.Stop)
	if v.Descriptor == "" {
		return "frag(" + rangeStr + ")"
	}
	return "frag(" + joinCanonical([]string{rangeStr, quote(v.Descriptor)}) + ")"
}

// modificationToken renders a modification Concept as either its bare
// default-vocabulary keyword (no namespace, e.g. "Ph") or a namespaced
// "ns:value" token.
func modificationToken(c concept.Concept) string {
	if c.Namespace() == "" {
		return c.Value()
	}
	return c.Namespace() + ":" + quote(c.Value())
}
