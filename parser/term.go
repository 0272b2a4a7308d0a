package parser

import (
	"fmt"
	"strings"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/location"
)

// termParser holds the state needed to build entities while walking one
// logical BEL statement: the scanner cursor, the parsing-mode flags and
// namespace validators from the current [directive.Context], and the line's
// accumulated soft diagnostics (naked names, undefined vocabulary members,
// legacy keyword usage). Hard grammar failures are returned as errors and
// translated to diagnostics by the caller, which alone knows which
// production failed.
type termParser struct {
	sc     *scanner
	ctx    *directive.Context
	source location.SourceID
	line   int
	diags  *[]diag.Issue
}

// spanAt builds a single-point span at byte offset pos within the current
// line, using pos+1 as a 1-based column (the scanner never sees multi-line
// text; line joining happens upstream in the lexer).
func (tp *termParser) spanAt(pos int) location.Span {
	return location.Point(tp.source, tp.line, pos+1)
}

func (tp *termParser) warn(code diag.Code, pos int, message string) {
	if tp.diags == nil {
		return
	}
	issue := diag.NewIssue(diag.Warning, code, message).WithSpan(tp.spanAt(pos)).Build()
	*tp.diags = append(*tp.diags, issue)
}

func (tp *termParser) info(code diag.Code, pos int, message string) {
	if tp.diags == nil {
		return
	}
	issue := diag.NewIssue(diag.Info, code, message).WithSpan(tp.spanAt(pos)).Build()
	*tp.diags = append(*tp.diags, issue)
}

// term parses one term production: a function call optionally followed by
// variant/location arguments, or a fusion, list, or reaction term.
func (tp *termParser) term() (entity.Entity, error) {
	fn, ok := tp.sc.ident()
	if !ok {
		return nil, fmt.Errorf("expected function name at position %d", tp.sc.pos)
	}
	switch strings.ToLower(fn) {
	case "complex", "complexabundance":
		return tp.listTerm(entity.ComplexAbundance)
	case "composite", "compositeabundance":
		return tp.listTerm(entity.CompositeAbundance)
	case "rxn", "reaction":
		return tp.reaction()
	}
	simpleFn, ok := entity.ParseFunction(fn)
	if !ok {
		return nil, fmt.Errorf("unrecognized function %q", fn)
	}
	if simpleFn.IsCentralDogma() && tp.sc.lookingAt('(') {
		if isFusionAhead(tp.sc) {
			if err := tp.sc.expect('('); err != nil {
				return nil, err
			}
			fus, err := tp.fusion(fusionKindFor(simpleFn))
			if err != nil {
				return nil, err
			}
			if err := tp.sc.expect(')'); err != nil {
				return nil, err
			}
			return fus, nil
		}
	}
	return tp.simpleTerm(simpleFn)
}

func fusionKindFor(fn entity.Function) entity.FusionFunction {
	switch fn {
	case entity.Gene:
		return entity.GeneFusion
	case entity.Rna, entity.MicroRna:
		return entity.RnaFusion
	case entity.Protein:
		return entity.ProteinFusion
	default:
		return entity.GeneFusion
	}
}

// isFusionAhead peeks past the opening '(' to see whether the next token is
// the literal "fus" keyword, without consuming anything.
func isFusionAhead(sc *scanner) bool {
	save := sc.pos
	defer func() { sc.pos = save }()
	if !sc.consume('(') {
		return false
	}
	id, ok := sc.ident()
	return ok && strings.EqualFold(id, "fus")
}

// simpleTerm parses `function(ns:name, variant*, loc?)`.
func (tp *termParser) simpleTerm(fn entity.Function) (entity.Entity, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, err
	}
	c, err := tp.concept()
	if err != nil {
		return nil, err
	}
	var variants []entity.Variant
	var loc concept.Concept
	for tp.sc.consume(',') {
		if tp.peekIdentIs("loc") {
			loc, err = tp.locationArg()
			if err != nil {
				return nil, err
			}
			continue
		}
		v, err := tp.variant()
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, err
	}
	return entity.NewSimpleAbundance(fn, c, variants, loc), nil
}

// peekIdentIs reports whether the next token (without consuming it) is the
// identifier want, case-insensitively.
func (tp *termParser) peekIdentIs(want string) bool {
	save := tp.sc.pos
	id, ok := tp.sc.ident()
	tp.sc.pos = save
	return ok && strings.EqualFold(id, want)
}

func (tp *termParser) locationArg() (concept.Concept, error) {
	if _, ok := tp.sc.ident(); !ok {
		return concept.Concept{}, fmt.Errorf("expected loc(...) at position %d", tp.sc.pos)
	}
	if err := tp.sc.expect('('); err != nil {
		return concept.Concept{}, err
	}
	c, err := tp.concept()
	if err != nil {
		return concept.Concept{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return concept.Concept{}, err
	}
	return c, nil
}

// concept parses `namespace:name` or a bare naked name, validating the pair
// against the registered namespace validator when one is declared.
//
// bareValue's character class (spec.md §4.4.1) includes ':', so a bare
// namespace:name pair is scanned as a single token and split on its first
// colon here, rather than scanning namespace and name as separate
// productions; a quoted name (ns:"some name") leaves a trailing colon on
// the bare token with the quoted literal following it.
func (tp *termParser) concept() (concept.Concept, error) {
	start := tp.sc.pos
	token, ok := tp.sc.bareValue()
	if !ok {
		return concept.Concept{}, fmt.Errorf("expected term value at position %d", tp.sc.pos)
	}
	ns, name, hasNamespace := strings.Cut(token, ":")
	if !hasNamespace {
		if !tp.ctx.AllowNakedNames {
			tp.warn(diag.E_NAKED_NAME, start, fmt.Sprintf("naked name %q used without a namespace prefix", token))
		}
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

// value scans a quoted or bare name token.
func (tp *termParser) value() (string, error) {
	tp.sc.skipSpace()
	if tp.sc.peek() == '"' {
		return tp.sc.quotedString()
	}
	v, ok := tp.sc.bareValue()
	if !ok {
		return "", fmt.Errorf("expected name at position %d", tp.sc.pos)
	}
	return v, nil
}

// listTerm parses `complex(ns:name)` (a named complex, ComplexAbundance
// only) or `complex(term, term, ...)` / `composite(term, term, ...)`.
func (tp *termParser) listTerm(fn entity.Function) (entity.Entity, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, err
	}
	if fn == entity.ComplexAbundance && tp.namedComplexAhead() {
		named, err := tp.concept()
		if err != nil {
			return nil, err
		}
		if err := tp.sc.expect(')'); err != nil {
			return nil, err
		}
		return entity.NewListAbundance(fn, nil, named), nil
	}
	var members []entity.Entity
	for {
		m, err := tp.term()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		if !tp.sc.consume(',') {
			break
		}
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, err
	}
	return entity.NewListAbundance(fn, members, concept.Concept{}), nil
}

// namedComplexAhead distinguishes `complex(ns:name)` from `complex(term(...))`
// by looking for an identifier followed by ':' rather than '(' immediately
// after the opening paren.
func (tp *termParser) namedComplexAhead() bool {
	save := tp.sc.pos
	defer func() { tp.sc.pos = save }()
	if _, ok := tp.sc.ident(); !ok {
		return false
	}
	return tp.sc.lookingAt(':')
}

// reaction parses `rxn(reactants(term, ...), products(term, ...))`.
func (tp *termParser) reaction() (entity.Entity, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, err
	}
	reactants, err := tp.reactionList("reactants")
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	products, err := tp.reactionList("products")
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, err
	}
	return entity.NewReaction(reactants, products, concept.Concept{}), nil
}

func (tp *termParser) reactionList(keyword string) ([]entity.Entity, error) {
	id, ok := tp.sc.ident()
	if !ok || !strings.EqualFold(id, keyword) {
		return nil, fmt.Errorf("expected %s(...) at position %d", keyword, tp.sc.pos)
	}
	if err := tp.sc.expect('('); err != nil {
		return nil, err
	}
	var members []entity.Entity
	if !tp.sc.lookingAt(')') {
		for {
			m, err := tp.term()
			if err != nil {
				return nil, err
			}
			members = append(members, m)
			if !tp.sc.consume(',') {
				break
			}
		}
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, err
	}
	return members, nil
}

// fusion parses the interior of `fus(ns1:name1, "range1", ns2:name2,
// "range2")`; the caller has already consumed "fus" and the opening '('.
func (tp *termParser) fusion(kind entity.FusionFunction) (entity.Entity, error) {
	c1, err := tp.concept()
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	r1, err := tp.fusionRange()
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	c2, err := tp.concept()
	if err != nil {
		return nil, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, err
	}
	r2, err := tp.fusionRange()
	if err != nil {
		return nil, err
	}
	return entity.NewFusion(kind, c1, r1, c2, r2), nil
}

func (tp *termParser) fusionRange() (entity.FusionRange, error) {
	s, err := tp.sc.quotedString()
	if err != nil {
		return entity.FusionRange{}, err
	}
	if s == "?" {
		return entity.MissingFusionRange(), nil
	}
	parts := strings.SplitN(s, "_", 3)
	if len(parts) != 3 {
		return entity.FusionRange{}, fmt.Errorf("malformed fusion range %q", s)
	}
	return entity.FusionRange{Reference: parts[0], Left: parts[1], Right: parts[2]}, nil
}
