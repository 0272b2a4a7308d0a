package bel

import (
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/lexer"
	"github.com/belgraph/bel/location"
	"github.com/belgraph/bel/parser"
	"github.com/belgraph/bel/relation"
)

// Statement is the result of [Parse]: one subject-relation-object BEL
// statement, parsed without touching a [graph.Graph] or any namespace/
// annotation resolution. Source and Target name spec.md §6.4's
// {source, relation, target} single-statement shape; they correspond to
// the statement's subject and object terms.
type Statement struct {
	Source         entity.Entity
	SourceModifier relation.Modifier
	Relation       relation.Relation
	Target         entity.Entity
	TargetModifier relation.Modifier

	// HasRelation is false for a bare term with no relation or object.
	HasRelation bool
}

// Parse parses a single BEL statement string in isolation: no SET/DEFINE
// directives and no graph construction. Terms parse against an empty
// [directive.Context], so [Option]s like [WithAllowNakedNames] still shape
// the grammar, and every namespace prefix is reported with a Warning-severity
// E_UNDEFINED_NAMESPACE issue. Use [Compile] to process a full document.
//
// Every diagnostic the parser reports for the line is returned in the
// result. For a nested statement only the outer [parser.Statement] is
// returned; the inner one is discarded; use [Compile] when nested
// statements must both be kept.
func Parse(statementText string, opts ...Option) (Statement, diag.Result) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dctx := directive.NewContext()
	dctx.AllowNested = cfg.allowNested
	dctx.AllowNakedNames = cfg.allowNakedNames

	source := location.NewSyntheticSourceID()
	issues := diag.NewCollectorUnlimited()

	line := lexer.Line{Number: 1, Text: statementText}
	statements, parseDiags := parser.New(dctx, source).Parse(line)
	issues.CollectAll(parseDiags)

	if len(statements) == 0 {
		return Statement{}, issues.Result()
	}

	first := statements[0]
	return Statement{
		Source:         first.Subject,
		SourceModifier: first.SubjectModifier,
		Relation:       first.Relation,
		Target:         first.Object,
		TargetModifier: first.ObjectModifier,
		HasRelation:    first.HasRelation,
	}, issues.Result()
}
