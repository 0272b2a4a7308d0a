package parser

import (
	"fmt"
	"strings"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/relation"
)

// legacyActivityKeywords maps BEL1's direct activity keywords to the bare
// default-vocabulary activity token their modern act(term, ma(...)) form
// carries (spec.md §4.4.2, legacy code 001).
var legacyActivityKeywords = map[string]string{
	"kin":     "kin",
	"phos":    "phos",
	"cat":     "cat",
	"gtp":     "gtp",
	"tscript": "tscript",
	"tport":   "tport",
	"chap":    "chap",
	"pep":     "pep",
	"ribo":    "ribo",
}

// modifierTerm parses a subject or object position that may be wrapped in a
// modifier: `act(...)`, `deg(...)`, `tloc(...)`, `sec(...)`, `surf(...)`, a
// legacy direct-activity keyword, or a plain term with no modifier at all.
func (tp *termParser) modifierTerm() (entity.Entity, relation.Modifier, error) {
	save := tp.sc.pos
	kwStart := tp.sc.pos
	kw, ok := tp.sc.ident()
	if ok && tp.sc.lookingAt('(') {
		lower := strings.ToLower(kw)
		switch lower {
		case "act":
			return tp.activityModifier()
		case "deg":
			return tp.degradationModifier()
		case "tloc":
			return tp.translocationModifier()
		case "sec":
			return tp.shorthandTranslocation(relation.Secreted())
		case "surf":
			return tp.shorthandTranslocation(relation.SurfaceExpressed())
		default:
			if token, legacy := legacyActivityKeywords[lower]; legacy {
				return tp.legacyActivity(kwStart, token)
			}
		}
	}
	// Not a modifier keyword: rewind and parse a plain term.
	tp.sc.pos = save
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	return e, relation.Modifier{}, nil
}

func (tp *termParser) activityModifier() (entity.Entity, relation.Modifier, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, relation.Modifier{}, err
	}
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	mod := relation.Activity(concept.Concept{})
	if tp.sc.consume(',') {
		if _, ok := tp.sc.ident(); !ok {
			return nil, relation.Modifier{}, fmt.Errorf("expected ma(...) at position %d", tp.sc.pos)
		}
		if err := tp.sc.expect('('); err != nil {
			return nil, relation.Modifier{}, err
		}
		effect, err := tp.modificationConcept()
		if err != nil {
			return nil, relation.Modifier{}, err
		}
		if err := tp.sc.expect(')'); err != nil {
			return nil, relation.Modifier{}, err
		}
		mod = relation.Activity(effect)
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, relation.Modifier{}, err
	}
	return e, mod, nil
}

func (tp *termParser) legacyActivity(kwStart int, token string) (entity.Entity, relation.Modifier, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, relation.Modifier{}, err
	}
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, relation.Modifier{}, err
	}
	tp.info(diag.I_LEGACY_KEYWORD_USED, kwStart, fmt.Sprintf("legacy %s(...) normalized to act(term, ma(%s))", token, token))
	return e, relation.Activity(concept.MustNewBare(token)), nil
}

func (tp *termParser) degradationModifier() (entity.Entity, relation.Modifier, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, relation.Modifier{}, err
	}
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, relation.Modifier{}, err
	}
	return e, relation.Degradation(), nil
}

// translocationModifier parses `tloc(term, fromLoc(ns:name), toLoc(ns:name))`.
func (tp *termParser) translocationModifier() (entity.Entity, relation.Modifier, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, relation.Modifier{}, err
	}
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, relation.Modifier{}, err
	}
	from, err := tp.locationCall("fromLoc")
	if err != nil {
		tp.warn(diag.E_MALFORMED_TRANSLOCATION, tp.sc.pos, err.Error())
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(','); err != nil {
		return nil, relation.Modifier{}, err
	}
	to, err := tp.locationCall("toLoc")
	if err != nil {
		tp.warn(diag.E_MALFORMED_TRANSLOCATION, tp.sc.pos, err.Error())
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, relation.Modifier{}, err
	}
	return e, relation.Translocation(from, to), nil
}

func (tp *termParser) locationCall(keyword string) (concept.Concept, error) {
	id, ok := tp.sc.ident()
	if !ok || !strings.EqualFold(id, keyword) {
		return concept.Concept{}, fmt.Errorf("expected %s(...) at position %d", keyword, tp.sc.pos)
	}
	if err := tp.sc.expect('('); err != nil {
		return concept.Concept{}, err
	}
	cc, err := tp.concept()
	if err != nil {
		return concept.Concept{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return concept.Concept{}, err
	}
	return cc, nil
}

func (tp *termParser) shorthandTranslocation(mod relation.Modifier) (entity.Entity, relation.Modifier, error) {
	if err := tp.sc.expect('('); err != nil {
		return nil, relation.Modifier{}, err
	}
	e, err := tp.term()
	if err != nil {
		return nil, relation.Modifier{}, err
	}
	if err := tp.sc.expect(')'); err != nil {
		return nil, relation.Modifier{}, err
	}
	return e, mod, nil
}
