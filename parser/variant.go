package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/entity"
)

// variant parses one variant production: var, pmod, gmod, frag, or one of
// the legacy sub/trunc forms normalized to HGVSVariant (spec.md §4.4.1, §9).
func (tp *termParser) variant() (entity.Variant, error) {
	start := tp.sc.pos
	kw, ok := tp.sc.ident()
	if !ok {
		return nil, fmt.Errorf("expected variant keyword at position %d", tp.sc.pos)
	}
	if err := tp.sc.expect('('); err != nil {
		return nil, err
	}
	var (
		v   entity.Variant
		err error
	)
	switch strings.ToLower(kw) {
	case "var":
		v, err = tp.hgvsVariant()
	case "pmod":
		v, err = tp.proteinModification()
	case "gmod":
		v, err = tp.geneModification()
	case "frag":
		v, err = tp.fragment()
	case "sub":
		v, err = tp.legacySub(start)
	case "trunc":
		v, err = tp.legacyTrunc(start)
	default:
		return nil, fmt.Errorf("unrecognized variant %q at position %d", kw, start)
	}
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, err
	}
	return v, nil
}

func (tp *termParser) hgvsVariant() (entity.Variant, error) {
	s, err := tp.sc.quotedString()
	if err != nil {
		return nil, err
	}
	return entity.HGVSVariant{Description: s}, nil
}

// proteinModification parses `pmod(mod [, aminoAcid [, position]])`. mod is
// either a bare default-vocabulary keyword (e.g. "Ph") or a namespace:value
// pair.
func (tp *termParser) proteinModification() (entity.Variant, error) {
	mod, err := tp.modificationConcept()
	if err != nil {
		return nil, err
	}
	pm := entity.ProteinModification{Modification: mod}
	if !tp.sc.consume(',') {
		return pm, nil
	}
	aaStart := tp.sc.pos
	aa, ok := tp.sc.ident()
	if !ok {
		return nil, fmt.Errorf("expected amino acid code at position %d", tp.sc.pos)
	}
	three, ok := threeLetterAminoAcid(aa)
	if !ok {
		tp.warn(diag.E_PLACEHOLDER_AMINO_ACID, aaStart, fmt.Sprintf("%q is not a recognized amino acid code", aa))
		three = aa
	}
	pm.AminoAcid = three
	if !tp.sc.consume(',') {
		return pm, nil
	}
	pos, err := tp.sc.integer()
	if err != nil {
		return nil, err
	}
	pm.Position = pos
	pm.HasPosition = true
	return pm, nil
}

func (tp *termParser) geneModification() (entity.Variant, error) {
	mod, err := tp.modificationConcept()
	if err != nil {
		return nil, err
	}
	return entity.GeneModification{Modification: mod}, nil
}

// modificationConcept parses a pmod/gmod modification argument: either a
// bare default-vocabulary keyword (e.g. "Ph") or a namespace:value pair. A
// bare keyword here is BEL's built-in modification vocabulary, not a naked
// name standing in for an undeclared namespace, so it never triggers
// E_NAKED_NAME the way [termParser.concept] does for ordinary term values.
func (tp *termParser) modificationConcept() (concept.Concept, error) {
	start := tp.sc.pos
	token, ok := tp.sc.bareValue()
	if !ok {
		return concept.Concept{}, fmt.Errorf("expected modification keyword at position %d", tp.sc.pos)
	}
	ns, name, hasNamespace := strings.Cut(token, ":")
	if !hasNamespace {
		return concept.NewBare(token)
	}
	if name == "" {
		var err error
		name, err = tp.value()
		if err != nil {
			return concept.Concept{}, err
		}
	}
	c, err := concept.New(ns, "", name)
	if err != nil {
		return concept.Concept{}, err
	}
	if v, ok := tp.ctx.Namespace(ns); ok {
		if !v.Contains(name, 0) {
			tp.warn(diag.E_UNDEFINED_NAME, start, fmt.Sprintf("%q is not a member of namespace %q", name, ns))
		}
	} else {
		tp.warn(diag.E_UNDEFINED_NAMESPACE, start, fmt.Sprintf("namespace %q is not defined", ns))
	}
	return c, nil
}

func (tp *termParser) fragment() (entity.Variant, error) {
	rangeStr, err := tp.sc.quotedString()
	if err != nil {
		return nil, err
	}
	start, stop, ok := strings.Cut(rangeStr, "_")
	if !ok {
		return nil, fmt.Errorf("malformed fragment range %q", rangeStr)
	}
	frag := entity.Fragment{Start: start, Stop: stop}
	if tp.sc.consume(',') {
		desc, err := tp.sc.quotedString()
		if err != nil {
			return nil, err
		}
		frag.Descriptor = desc
	}
	return frag, nil
}

// legacySub parses the legacy `sub(aminoAcid1, position, aminoAcid2)`
// protein substitution form and normalizes it to an HGVS description
// (legacy code 025).
func (tp *termParser) legacySub(start int) (entity.Variant, error) {
	from, ok := tp.sc.ident()
	if !ok {
		return nil, fmt.Errorf("expected amino acid code at position %d", tp.sc.pos)
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	pos, err := tp.sc.integer()
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	to, ok := tp.sc.ident()
	if !ok {
		return nil, fmt.Errorf("expected amino acid code at position %d", tp.sc.pos)
	}
	fromThree, fromOK := threeLetterAminoAcid(from)
	toThree, toOK := threeLetterAminoAcid(to)
	if !fromOK {
		fromThree = from
	}
	if !toOK {
		toThree = to
	}
	tp.info(diag.I_LEGACY_KEYWORD_USED, start, "legacy sub(...) normalized to var(\"p.HGVS\")")
	desc := "p." + fromThree + strconv.Itoa(pos) + toThree
	return entity.HGVSVariant{Description: desc}, nil
}

// legacyTrunc parses the legacy `trunc(position)` truncation form and
// normalizes it to an HGVS description (legacy code 009).
func (tp *termParser) legacyTrunc(start int) (entity.Variant, error) {
	pos, err := tp.sc.integer()
	if err != nil {
		return nil, err
	}
	tp.info(diag.I_LEGACY_KEYWORD_USED, start, "legacy trunc(...) normalized to var(\"p.HGVS\")")
	return entity.HGVSVariant{Description: "p." + strconv.Itoa(pos) + "*"}, nil
}
