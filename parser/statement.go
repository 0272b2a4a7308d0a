package parser

import (
	"fmt"

	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/lexer"
	"github.com/belgraph/bel/location"
	"github.com/belgraph/bel/relation"
)

// Statement is one parsed BEL statement: a subject term with its optional
// modifier, and — unless the statement is a bare term — a relation and
// object term with its own optional modifier.
//
// A nested statement (`term relation (term relation term)`) is flattened
// into two Statements by [Parser.Parse]: the outer edge subject -> (inner
// subject) and the inner edge (inner subject) -> (inner object), per
// spec.md §4.4's one-level nesting rule.
type Statement struct {
	Subject         entity.Entity
	SubjectModifier relation.Modifier
	Relation        relation.Relation
	Object          entity.Entity
	ObjectModifier  relation.Modifier
	HasRelation     bool
}

// Parser parses BEL statement lines (the term/relation grammar of spec.md
// §4.4) against the parsing-mode flags and namespace validators of a
// [directive.Context].
type Parser struct {
	ctx    *directive.Context
	source location.SourceID
}

// New returns a Parser that validates terms against ctx and attributes
// diagnostics to source.
func New(ctx *directive.Context, source location.SourceID) *Parser {
	return &Parser{ctx: ctx, source: source}
}

// Parse parses one logical line's statement text into one or two
// [Statement] values (two only for a nested statement). On a grammar
// failure it returns no statements and an Error-severity issue appended to
// the returned diagnostics; the insertion protocol treats that as a failed
// statement and moves on to the next line (spec.md §4.4.4).
func (p *Parser) Parse(line lexer.Line) ([]Statement, []diag.Issue) {
	var diags []diag.Issue
	tp := &termParser{
		sc:     newScanner(line.Text),
		ctx:    p.ctx,
		source: p.source,
		line:   line.Number,
		diags:  &diags,
	}

	subject, subjectMod, err := tp.modifierTerm()
	if err != nil {
		return nil, append(diags, p.syntaxError(tp, err))
	}
	tp.sc.skipSpace()
	if tp.sc.eof() {
		return []Statement{{Subject: subject, SubjectModifier: subjectMod}}, diags
	}

	relStart := tp.sc.pos
	rel, ok := tp.relationToken()
	if !ok {
		return nil, append(diags, p.syntaxError(tp, fmt.Errorf("expected relation keyword at position %d", relStart)))
	}

	if tp.sc.consume('(') {
		if !p.ctx.AllowNested {
			issue := diag.NewIssue(diag.Error, diag.E_NESTED_RELATION, "nested statements are not permitted").
				WithSpan(tp.spanAt(relStart)).Build()
			return nil, append(diags, issue)
		}
		inner, innerDiags, ok := p.parseNested(tp)
		diags = append(diags, innerDiags...)
		if !ok {
			return nil, diags
		}
		outer := Statement{
			Subject:         subject,
			SubjectModifier: subjectMod,
			Relation:        rel,
			Object:          inner.Subject,
			ObjectModifier:  inner.SubjectModifier,
			HasRelation:     true,
		}
		return []Statement{outer, inner}, diags
	}

	object, objectMod, err := tp.modifierTerm()
	if err != nil {
		return nil, append(diags, p.syntaxError(tp, err))
	}
	tp.sc.skipSpace()
	if !tp.sc.eof() {
		issue := diag.NewIssue(diag.Error, diag.E_BEL_SYNTAX, fmt.Sprintf("unexpected trailing text at position %d", tp.sc.pos)).
			WithSpan(tp.spanAt(tp.sc.pos)).Build()
		return nil, append(diags, issue)
	}

	stmt := Statement{
		Subject:         subject,
		SubjectModifier: subjectMod,
		Relation:        rel,
		Object:          object,
		ObjectModifier:  objectMod,
		HasRelation:     true,
	}
	return []Statement{stmt}, diags
}

// parseNested parses the `(term relation term)` nested form, consuming up
// to and including its closing ')'. ok is false on a grammar failure, with
// the failure appended to the returned diagnostics.
func (p *Parser) parseNested(tp *termParser) (stmt Statement, diags []diag.Issue, ok bool) {
	subject, subjectMod, err := tp.modifierTerm()
	if err != nil {
		return Statement{}, []diag.Issue{p.syntaxError(tp, err)}, false
	}
	relStart := tp.sc.pos
	rel, found := tp.relationToken()
	if !found {
		return Statement{}, []diag.Issue{p.syntaxError(tp, fmt.Errorf("expected relation keyword at position %d", relStart))}, false
	}
	object, objectMod, err := tp.modifierTerm()
	if err != nil {
		return Statement{}, []diag.Issue{p.syntaxError(tp, err)}, false
	}
	if err := tp.sc.expect(')'); err != nil {
		return Statement{}, []diag.Issue{p.syntaxError(tp, err)}, false
	}
	return Statement{
		Subject:         subject,
		SubjectModifier: subjectMod,
		Relation:        rel,
		Object:          object,
		ObjectModifier:  objectMod,
		HasRelation:     true,
	}, nil, true
}

// symbolicRelations lists the multi-character operator spellings a relation
// may take.
var symbolicRelations = []string{"->", "=>", "-|", "=|", "--"}

// relationToken scans a relation keyword or symbolic alias (spec.md §4.4.3).
func (tp *termParser) relationToken() (relation.Relation, bool) {
	tp.sc.skipSpace()
	for _, sym := range symbolicRelations {
		if tp.sc.startsWith(sym) {
			tp.sc.pos += len(sym)
			return relation.MustParse(sym), true
		}
	}
	id, ok := tp.sc.ident()
	if !ok {
		return relation.Relation(0), false
	}
	return relation.Parse(id)
}

func (p *Parser) syntaxError(tp *termParser, err error) diag.Issue {
	return diag.NewIssue(diag.Error, diag.E_BEL_SYNTAX, err.Error()).
		WithSpan(tp.spanAt(tp.sc.pos)).Build()
}
