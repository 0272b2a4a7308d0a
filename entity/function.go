package entity

import "fmt"

// Function is a closed enumeration of BEL term functions. The zero value is
// not a valid function.
type Function uint8

const (
	invalidFunction Function = iota
	Abundance
	Gene
	Rna
	MicroRna
	Protein
	BiologicalProcess
	Pathology
	Population
	ComplexAbundance
	CompositeAbundance
	ReactionFunction
)

var functionNames = map[Function]string{
	Abundance:          "a",
	Gene:               "g",
	Rna:                "r",
	MicroRna:           "m",
	Protein:            "p",
	BiologicalProcess:  "bp",
	Pathology:          "path",
	Population:         "pop",
	ComplexAbundance:   "complex",
	CompositeAbundance: "composite",
	ReactionFunction:   "rxn",
}

var functionLongNames = map[Function]string{
	Abundance:          "abundance",
	Gene:               "geneAbundance",
	Rna:                "rnaAbundance",
	MicroRna:           "microRNAAbundance",
	Protein:            "proteinAbundance",
	BiologicalProcess:  "biologicalProcess",
	Pathology:          "pathology",
	Population:         "populationAbundance",
	ComplexAbundance:   "complexAbundance",
	CompositeAbundance: "compositeAbundance",
	ReactionFunction:   "reaction",
}

var functionsByToken map[string]Function

func init() {
	functionsByToken = make(map[string]Function, len(functionNames)*2)
	for fn, abbr := range functionNames {
		functionsByToken[abbr] = fn
	}
	for fn, long := range functionLongNames {
		functionsByToken[long] = fn
	}
}

// String returns the short-form token BEL uses in canonical forms (e.g. "p").
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "invalid"
}

// LongName returns the long-form keyword (e.g. "proteinAbundance").
func (f Function) LongName() string {
	if name, ok := functionLongNames[f]; ok {
		return name
	}
	return "invalid"
}

// IsZero reports whether f is the invalid zero value.
func (f Function) IsZero() bool {
	return f == invalidFunction
}

// ParseFunction resolves a short or long function token to its Function value.
func ParseFunction(token string) (Function, bool) {
	fn, ok := functionsByToken[token]
	return fn, ok
}

// MustParseFunction is like ParseFunction but panics on an unrecognized token.
func MustParseFunction(token string) Function {
	fn, ok := ParseFunction(token)
	if !ok {
		panic(fmt.Sprintf("entity.MustParseFunction(%q): unrecognized function", token))
	}
	return fn
}

// IsCentralDogma reports whether f is one of the Gene/Rna/MicroRna/Protein
// functions, which may carry an ordered list of Variants.
func (f Function) IsCentralDogma() bool {
	switch f {
	case Gene, Rna, MicroRna, Protein:
		return true
	default:
		return false
	}
}
