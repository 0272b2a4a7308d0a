package entity

import "github.com/belgraph/bel/concept"

// FusionFunction identifies which CentralDogma level a Fusion occurs at:
// GeneFusion, RnaFusion, or ProteinFusion.
type FusionFunction uint8

const (
	invalidFusionFunction FusionFunction = iota
	GeneFusion
	RnaFusion
	ProteinFusion
)

var fusionFunctionNames = map[FusionFunction]string{
	GeneFusion:    "fus",
	RnaFusion:     "fus",
	ProteinFusion: "fus",
}

// String returns the BEL token for the fusion function. All three levels
// share the `fus(...)` token; the level is disambiguated by the partners'
// own namespace/function context at the parser layer, mirroring how BEL
// itself encodes fusions as `g(fus(...))`, `r(fus(...))`, `p(fus(...))`.
func (f FusionFunction) String() string {
	if name, ok := fusionFunctionNames[f]; ok {
		return name
	}
	return "invalid"
}

// FusionRange is one partner's breakpoint range in a Fusion: either missing
// (the "?" sentinel) or enumerated as a reference sequence code plus a left
// and right position (each an integer or "?").
type FusionRange struct {
	Missing   bool
	Reference string
	Left      string
	Right     string
}

// MissingFusionRange is the "?" sentinel range.
func MissingFusionRange() FusionRange {
	return FusionRange{Missing: true}
}

// Canonical renders the range as `"?"` or `"<ref>_<left>_<right>"`.
func (r FusionRange) Canonical() string {
	if r.Missing {
		return `"?"`
	}
	return quote(r.Reference + "_" + r.Left + "_" + r.Right)
}

// Fusion is `fus(ns1:name1, "range1", ns2:name2, "range2")`: a 5′ partner
// and a 3′ partner, each a Concept, each with its own FusionRange. Unlike
// list/reaction entities, fusion partner order is semantic and is never
// sorted (spec.md §8 property 3: swapping 5′/3′ changes the hash).
type Fusion struct {
	kind      FusionFunction
	fivePrime concept.Concept
	fiveRange FusionRange
	threePrime concept.Concept
	threeRange FusionRange
}

// NewFusion constructs a Fusion.
func NewFusion(kind FusionFunction, fivePrime concept.Concept, fiveRange FusionRange, threePrime concept.Concept, threeRange FusionRange) Fusion {
	return Fusion{
		kind:       kind,
		fivePrime:  fivePrime,
		fiveRange:  fiveRange,
		threePrime: threePrime,
		threeRange: threeRange,
	}
}

// Function implements [Entity]. It maps the fusion's kind to the shared
// Function enumeration: Gene, Rna or Protein for a gene, RNA or protein
// fusion.
func (e Fusion) Function() Function {
	switch e.kind {
	case GeneFusion:
		return Gene
	case RnaFusion:
		return Rna
	case ProteinFusion:
		return Protein
	default:
		return invalidFunction
	}
}

// FusionKind returns which CentralDogma level this fusion occurs at.
func (e Fusion) FusionKind() FusionFunction { return e.kind }

// FivePrime returns the 5′ partner concept.
func (e Fusion) FivePrime() concept.Concept { return e.fivePrime }

// FiveRange returns the 5′ partner's breakpoint range.
func (e Fusion) FiveRange() FusionRange { return e.fiveRange }

// ThreePrime returns the 3′ partner concept.
func (e Fusion) ThreePrime() concept.Concept { return e.threePrime }

// ThreeRange returns the 3′ partner's breakpoint range.
func (e Fusion) ThreeRange() FusionRange { return e.threeRange }

// Canonical implements [Entity]. Partner order is preserved, never sorted.
func (e Fusion) Canonical() string {
	parts := []string{
		e.fivePrime.Namespace() + ":" + quote(e.fivePrime.Value()),
		e.fiveRange.Canonical(),
		e.threePrime.Namespace() + ":" + quote(e.threePrime.Value()),
		e.threeRange.Canonical(),
	}
	return "fus(" + joinCanonical(parts) + ")"
}

// Hash implements [Entity].
func (e Fusion) Hash() [64]byte {
	return Hash(e.Canonical())
}
