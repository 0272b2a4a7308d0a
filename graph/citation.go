package graph

import "strings"

// CitationMetadata holds the optional positional fields of `SET Citation =
// {"type","name","ref",date,authors,comment}` that do not participate in
// edge identity (spec.md §3.2, §4.5; supplemented per SPEC_FULL.md §7.3).
type CitationMetadata struct {
	Date    string
	Authors []string
	Comment string
}

// Citation is the `(type, reference)` pair required by every qualified
// edge, plus its Name field and optional parsed metadata.
type Citation struct {
	Type      string
	Name      string
	Reference string
	Metadata  CitationMetadata
}

// IsZero reports whether no citation was supplied.
func (c Citation) IsZero() bool {
	return c.Type == "" && c.Name == "" && c.Reference == ""
}

// recognizedCitationTypes is the closed-ish set of citation Type values
// spec.md §3.3 invariant 3 names. PubMed additionally requires a numeric
// Reference; the others are accepted without further validation.
var recognizedCitationTypes = map[string]bool{
	"PubMed":          true,
	"DOI":             true,
	"URL":             true,
	"PMC":             true,
	"Other":           true,
	"Online Resource": true,
	"Journal Article": true,
	"Book":            true,
}

// isPubMed reports whether c's Type is the PubMed citation type, matched
// case-insensitively since legacy documents spell it inconsistently.
func (c Citation) isPubMed() bool {
	return strings.EqualFold(c.Type, "PubMed")
}

// isNumericReference reports whether s consists entirely of ASCII digits,
// the form spec.md §3.3 invariant 3 requires of a PubMed identifier.
func isNumericReference(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
