// Package relation defines BEL's closed relation enumeration and the
// symbolic aliases BEL statements may use in place of a keyword.
package relation

import (
	"fmt"

	"github.com/belgraph/bel/internal/ident"
)

// Relation is a closed enumeration of BEL relation keywords. The zero value
// is not a valid relation; use the named constants.
type Relation uint8

const (
	invalid Relation = iota
	Increases
	DirectlyIncreases
	Decreases
	DirectlyDecreases
	CausesNoChange
	PositiveCorrelation
	NegativeCorrelation
	Association
	IsA
	SubProcessOf
	RateLimitingStepOf
	BiomarkerFor
	PrognosticBiomarkerFor
	Analogous
	Orthologous
	TranscribedTo
	TranslatedTo
	Regulates
	DirectlyRegulates
	Binds
	NoCorrelation
	Correlation
	EquivalentTo
	PartOf
	HasVariant
	HasComponent
	HasMember
	HasReactant
	HasProduct
)

var names = map[Relation]string{
	Increases:               "increases",
	DirectlyIncreases:       "directlyIncreases",
	Decreases:               "decreases",
	DirectlyDecreases:       "directlyDecreases",
	CausesNoChange:          "causesNoChange",
	PositiveCorrelation:     "positiveCorrelation",
	NegativeCorrelation:     "negativeCorrelation",
	Association:             "association",
	IsA:                     "isA",
	SubProcessOf:            "subProcessOf",
	RateLimitingStepOf:      "rateLimitingStepOf",
	BiomarkerFor:            "biomarkerFor",
	PrognosticBiomarkerFor:  "prognosticBiomarkerFor",
	Analogous:               "analogous",
	Orthologous:             "orthologous",
	TranscribedTo:           "transcribedTo",
	TranslatedTo:            "translatedTo",
	Regulates:               "regulates",
	DirectlyRegulates:       "directlyRegulates",
	Binds:                   "binds",
	NoCorrelation:           "noCorrelation",
	Correlation:             "correlation",
	EquivalentTo:            "equivalentTo",
	PartOf:                  "partOf",
	HasVariant:              "hasVariant",
	HasComponent:            "hasComponent",
	HasMember:               "hasMember",
	HasReactant:             "hasReactant",
	HasProduct:              "hasProduct",
}

// aliases maps symbolic and legacy spellings onto their canonical Relation.
var aliases = map[string]Relation{
	"->": Increases,
	"=>": DirectlyIncreases,
	"-|": Decreases,
	"=|": DirectlyDecreases,
	"--": Association,
	"pos": PositiveCorrelation,
	"neg": NegativeCorrelation,
	"cnc": CausesNoChange,
}

// foldedNames maps each canonical keyword's lower_snake_case form onto its
// Relation, so legacy documents that spell a keyword in PascalCase or
// snake_case (rather than BEL's own lowerCamelCase) still parse.
var foldedNames = map[string]Relation{}

func init() {
	// Every canonical keyword also parses as its own alias.
	for r, name := range names {
		aliases[name] = r
		foldedNames[ident.ToLowerSnake(name)] = r
	}
}

// String returns the canonical BEL keyword for r, or "invalid" for the zero value.
func (r Relation) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return "invalid"
}

// IsZero reports whether r is the invalid zero value.
func (r Relation) IsZero() bool {
	return r == invalid
}

// Parse resolves a relation keyword or symbolic alias (e.g. "->", "pos",
// "increases") to its canonical Relation. Parse reports (invalid, false) for
// unrecognized tokens. Keywords are matched exactly first, then folded to
// lower_snake_case to tolerate alternate casing (PascalCase, snake_case)
// that legacy documents use for the same keyword.
func Parse(token string) (Relation, bool) {
	if r, ok := aliases[token]; ok {
		return r, true
	}
	r, ok := foldedNames[ident.ToLowerSnake(token)]
	return r, ok
}

// MustParse is like Parse but panics on an unrecognized token. Intended for
// statically-known relations (e.g. in tests or inference code).
func MustParse(token string) Relation {
	r, ok := Parse(token)
	if !ok {
		panic(fmt.Sprintf("relation.MustParse(%q): unrecognized relation", token))
	}
	return r
}

// Qualified reports whether a relation requires citation and evidence when
// asserted by a BEL statement. Unqualified relations are only produced by
// inference (see the graph package's insertion protocol) or directly by a
// statement whose relation is one of the structural keywords below.
func (r Relation) Qualified() bool {
	switch r {
	case TranscribedTo, TranslatedTo, EquivalentTo, PartOf,
		HasVariant, HasComponent, HasMember, HasReactant, HasProduct:
		return false
	default:
		return true
	}
}

// Symmetric reports whether r denotes an undirected-equivalent relation:
// compilation inserts both directions as distinct edges carrying the same data.
func (r Relation) Symmetric() bool {
	return r == PositiveCorrelation || r == NegativeCorrelation
}
