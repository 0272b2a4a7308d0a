package bel

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/graph"
	"github.com/belgraph/bel/internal/trace"
	"github.com/belgraph/bel/lexer"
	"github.com/belgraph/bel/location"
	"github.com/belgraph/bel/parser"
	"github.com/belgraph/bel/relation"
	"github.com/belgraph/bel/resource"
)

// Compile runs the full pipeline — lexer, directive dispatch, resource
// resolution, term/relation parsing, graph insertion — over lines, a BEL
// document as a slice of raw source lines (split on "\n" by the caller).
//
// Compile assigns lines a synthetic [location.SourceID] since they carry no
// filesystem path of their own; diagnostics reference that source. A fresh
// compilation ID is generated per call and threaded onto ctx via
// [trace.WithRequestID] so every traced operation for this compilation
// shares it.
//
// ctx cancellation is checked between logical lines: a cancelled context
// stops compilation early and the returned Result carries whatever
// diagnostics were collected up to that point (it is not itself a fatal
// issue; check ctx.Err() separately if that distinction matters).
func Compile(ctx context.Context, lines []string, opts ...Option) (*graph.Graph, diag.Result) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	compilationID := uuid.New().String()
	ctx = trace.WithRequestID(ctx, compilationID)

	op := trace.Begin(ctx, cfg.logger, "bel.compile", slog.Int("lines", len(lines)))
	var retErr error
	defer func() { op.End(retErr) }()

	source := location.NewSyntheticSourceID()
	issues := diag.NewCollector(cfg.issueLimit)

	g := compile(ctx, lines, source, cfg, issues)
	return g, issues.Result()
}

// CompileSource is like [Compile] but attributes diagnostics to a caller-
// supplied [location.SourceID] (e.g. one built with
// [location.SourceIDFromPath] for a file read from disk) instead of minting
// a synthetic one.
func CompileSource(ctx context.Context, source location.SourceID, lines []string, opts ...Option) (*graph.Graph, diag.Result) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	compilationID := uuid.New().String()
	ctx = trace.WithRequestID(ctx, compilationID)

	op := trace.Begin(ctx, cfg.logger, "bel.compile", slog.Int("lines", len(lines)), slog.String("source", source.String()))
	var retErr error
	defer func() { op.End(retErr) }()

	issues := diag.NewCollector(cfg.issueLimit)
	g := compile(ctx, lines, source, cfg, issues)
	return g, issues.Result()
}

func compile(ctx context.Context, lines []string, source location.SourceID, cfg config, issues *diag.Collector) *graph.Graph {
	dctx := directive.NewContext()
	dctx.AllowNested = cfg.allowNested
	dctx.AllowNakedNames = cfg.allowNakedNames
	dctx.CitationClearing = cfg.citationClearing
	dctx.DisallowUnqualifiedTranslocations = cfg.disallowUnqualifiedTranslocations
	dctx.RequiredAnnotations = cfg.requiredAnnotations

	var resolver *resource.Resolver
	if cfg.fetcher != nil {
		r, err := resource.NewResolver(cfg.fetcher, nil, 0)
		if err == nil {
			resolver = r
		}
	}

	g := graph.New(graph.WithLogger(cfg.logger))
	logical := lexer.Preprocess(lines, source, issues)
	p := parser.New(dctx, source)

	for _, line := range logical {
		if line.Debug {
			continue
		}
		if ctx.Err() != nil {
			trace.Warn(ctx, cfg.logger, "compilation cancelled", slog.String("ctx_err", ctx.Err().Error()))
			break
		}

		if directive.Dispatch(ctx, line.Text, dctx, resolver, source, line.Number, issues) {
			continue
		}

		statements, parseDiags := p.Parse(line)
		issues.CollectAll(parseDiags)
		for _, stmt := range statements {
			insertStatement(ctx, g, dctx, stmt, source, line, issues)
		}
	}

	if !dctx.HasDocumentMetadata() {
		issues.Collect(diag.NewIssue(diag.Fatal, diag.E_MISSING_DOCUMENT_METADATA,
			"document reached end of input without setting SET DOCUMENT Name and Version").
			Build())
	}

	return g
}

// insertStatement inserts one parsed statement's subject/object entities and
// the edge between them, choosing the qualified or unqualified insertion
// path by the statement's relation (spec.md §3.3, §4.4.4).
func insertStatement(ctx context.Context, g *graph.Graph, dctx *directive.Context, stmt parser.Statement, source location.SourceID, line lexer.Line, issues *diag.Collector) {
	if _, err := g.AddNode(ctx, stmt.Subject); err != nil {
		return
	}
	if !stmt.HasRelation {
		return
	}
	if _, err := g.AddNode(ctx, stmt.Object); err != nil {
		return
	}

	if !stmt.Relation.Qualified() {
		insertUnqualified(ctx, g, stmt)
		return
	}

	if issue, ok := checkTranslocationGuard(dctx, stmt, source, line.Number); !ok {
		issues.Collect(issue)
		return
	}
	if issue, ok := checkRequiredAnnotations(dctx, source, line.Number); !ok {
		issues.Collect(issue)
		return
	}

	citation := graph.Citation{Type: dctx.Citation.Type, Name: dctx.Citation.Name, Reference: dctx.Citation.Reference,
		Metadata: graph.CitationMetadata{Date: dctx.Citation.Date, Authors: dctx.Citation.Authors, Comment: dctx.Citation.Comment}}

	_, issue, err := g.AddQualifiedEdge(ctx, stmt.Subject, stmt.Object, stmt.Relation, citation,
		dctx.Evidence, dctx.Annotations, stmt.SubjectModifier, stmt.ObjectModifier, line.Number, line.Text)
	if err != nil {
		return
	}
	if !issue.IsZero() {
		issues.Collect(issue)
		return
	}

	if stmt.Relation.Symmetric() {
		_, issue, err := g.AddQualifiedEdge(ctx, stmt.Object, stmt.Subject, stmt.Relation, citation,
			dctx.Evidence, dctx.Annotations, stmt.ObjectModifier, stmt.SubjectModifier, line.Number, line.Text)
		if err != nil {
			return
		}
		if !issue.IsZero() {
			issues.Collect(issue)
		}
	}
}

func insertUnqualified(ctx context.Context, g *graph.Graph, stmt parser.Statement) {
	_, _ = g.AddUnqualifiedEdge(ctx, stmt.Subject, stmt.Object, stmt.Relation)
}

// checkTranslocationGuard enforces disallow_unqualified_translocations: a
// tloc()/sec()/surf() modifier asserted without a citation and evidence
// currently in scope is rejected outright rather than left to
// AddQualifiedEdge's own citation check, since the two failures have
// distinct causes worth distinguishing in diagnostics.
func checkTranslocationGuard(dctx *directive.Context, stmt parser.Statement, source location.SourceID, lineNumber int) (diag.Issue, bool) {
	if !dctx.DisallowUnqualifiedTranslocations {
		return diag.Issue{}, true
	}
	hasTranslocation := stmt.SubjectModifier.Kind == relation.TranslocationModifier ||
		stmt.ObjectModifier.Kind == relation.TranslocationModifier
	if !hasTranslocation {
		return diag.Issue{}, true
	}
	if !dctx.Citation.IsZero() && dctx.Evidence != "" {
		return diag.Issue{}, true
	}
	return diag.NewIssue(diag.Error, diag.E_UNQUALIFIED_TRANSLOCATION_DISALLOWED,
		"translocation modifier requires a citation and evidence when disallow_unqualified_translocations is set").
		WithSpan(location.Point(source, lineNumber, 1)).
		Build(), false
}

// checkRequiredAnnotations enforces options.required_annotations: every
// qualified edge must carry each required key in its currently-scoped
// annotation set.
func checkRequiredAnnotations(dctx *directive.Context, source location.SourceID, lineNumber int) (diag.Issue, bool) {
	for _, key := range dctx.RequiredAnnotations {
		if _, ok := dctx.Annotations[key]; !ok {
			return diag.NewIssue(diag.Error, diag.E_REQUIRED_ANNOTATION_MISSING,
				"required annotation \""+key+"\" is not currently set").
				WithSpan(location.Point(source, lineNumber, 1)).
				Build(), false
		}
	}
	return diag.Issue{}, true
}
