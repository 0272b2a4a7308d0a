package parser

import "strings"

// aminoAcidCodes maps legacy single-letter amino acid codes to their
// three-letter equivalents, used when normalizing legacy `sub(...)` variants
// into pmod/var forms (spec.md §4.4.1, legacy code 025).
var aminoAcidCodes = map[byte]string{
	'A': "Ala", 'R': "Arg", 'N': "Asn", 'D': "Asp", 'C': "Cys",
	'E': "Glu", 'Q': "Gln", 'G': "Gly", 'H': "His", 'I': "Ile",
	'L': "Leu", 'K': "Lys", 'M': "Met", 'F': "Phe", 'P': "Pro",
	'S': "Ser", 'T': "Thr", 'W': "Trp", 'Y': "Tyr", 'V': "Val",
}

// threeLetterAminoAcid normalizes a one- or three-letter amino acid code to
// its three-letter form. ok is false when code is neither.
func threeLetterAminoAcid(code string) (string, bool) {
	if len(code) == 1 {
		three, ok := aminoAcidCodes[code[0]]
		return three, ok
	}
	for _, three := range aminoAcidCodes {
		if strings.EqualFold(three, code) {
			return three, true
		}
	}
	return "", false
}
