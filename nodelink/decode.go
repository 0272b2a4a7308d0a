package nodelink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/directive"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/graph"
	"github.com/belgraph/bel/lexer"
	"github.com/belgraph/bel/location"
	"github.com/belgraph/bel/parser"
	"github.com/belgraph/bel/relation"
)

// DecodeOption configures [Decode].
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strictJSON bool
}

// WithStrictJSON disables JSONC preprocessing (comments, trailing commas):
// input must be exact RFC 8259 JSON. The default tolerates JSONC, matching
// the teacher library's adapter posture toward hand-edited fixture files.
func WithStrictJSON(strict bool) DecodeOption {
	return func(c *decodeConfig) { c.strictJSON = strict }
}

// Decode parses a node-link JSON document and rebuilds the graph it
// describes, reinserting every node and edge through [graph.Graph]'s own
// construction path so hashes are recomputed rather than trusted from the
// wire, and so AddQualifiedEdge's citation/evidence validation still runs.
// A node referencing malformed canonical text, or an edge referencing an
// unknown node hash, is reported in the returned [diag.Result] without
// aborting the rest of the document.
func Decode(ctx context.Context, data []byte, opts ...DecodeOption) (*graph.Graph, DocumentMetadata, diag.Result) {
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	issues := diag.NewCollectorUnlimited()
	source := location.NewSyntheticSourceID()

	raw := data
	if !cfg.strictJSON {
		raw = jsonc.ToJSON(data)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		issues.Collect(diag.NewIssue(diag.Fatal, diag.E_ADAPTER_PARSE,
			fmt.Sprintf("malformed node-link document: %v", err)).Build())
		return graph.New(), DocumentMetadata{}, issues.Result()
	}

	meta := decodeMetadata(doc.Metadata)
	g := graph.New()
	dctx := directive.NewContext()
	p := parser.New(dctx, source)

	byHash := make(map[string]entity.Entity, len(doc.Nodes))
	for i, nr := range doc.Nodes {
		e, ok := decodeCanonical(p, nr.Canonical)
		if !ok {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE,
				fmt.Sprintf("node %d: cannot parse canonical form %q", i, nr.Canonical)).
				Build())
			continue
		}
		if _, err := g.AddNode(ctx, e); err != nil {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE,
				fmt.Sprintf("node %d: %v", i, err)).Build())
			continue
		}
		byHash[nr.Hash] = e
	}

	for i, er := range doc.Edges {
		decodeEdge(ctx, g, byHash, er, i, issues)
	}

	return g, meta, issues.Result()
}

func decodeMetadata(m map[string]any) DocumentMetadata {
	get := func(key string) string {
		v, _ := m[key].(string)
		return v
	}
	return DocumentMetadata{
		Name:        get("name"),
		Version:     get("version"),
		Description: get("description"),
		Authors:     get("authors"),
		Licenses:    get("licenses"),
		ContactInfo: get("contactInfo"),
		Copyright:   get("copyright"),
		Disclaimer:  get("disclaimer"),
		Project:     get("project"),
	}
}

// decodeCanonical reparses a node's canonical text as a bare term, the same
// grammar path a document's standalone term statement takes. The parser's
// warnings are ignored: the decode context declares no namespaces, so every
// namespaced term draws one. A grammar failure yields no statement.
func decodeCanonical(p *parser.Parser, canonical string) (entity.Entity, bool) {
	statements, _ := p.Parse(lexer.Line{Number: 1, Text: canonical})
	if len(statements) != 1 || statements[0].HasRelation {
		return nil, false
	}
	return statements[0].Subject, true
}

func decodeEdge(ctx context.Context, g *graph.Graph, byHash map[string]entity.Entity, er edgeRecord, index int, issues *diag.Collector) {
	source, ok := byHash[er.SourceHash]
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_UNKNOWN_NODE,
			fmt.Sprintf("edge %d: source hash %s references no known node", index, er.SourceHash)).Build())
		return
	}
	target, ok := byHash[er.TargetHash]
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_UNKNOWN_NODE,
			fmt.Sprintf("edge %d: target hash %s references no known node", index, er.TargetHash)).Build())
		return
	}
	rel, ok := relation.Parse(er.Relation)
	if !ok {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE,
			fmt.Sprintf("edge %d: unrecognized relation %q", index, er.Relation)).Build())
		return
	}

	if !er.Qualified {
		if _, err := g.AddUnqualifiedEdge(ctx, source, target, rel); err != nil {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE,
				fmt.Sprintf("edge %d: %v", index, err)).Build())
		}
		return
	}

	citation := graph.Citation{}
	if er.Citation != nil {
		citation = graph.Citation{
			Type:      er.Citation.Type,
			Name:      er.Citation.Name,
			Reference: er.Citation.Reference,
			Metadata: graph.CitationMetadata{
				Date:    er.Citation.Date,
				Authors: er.Citation.Authors,
				Comment: er.Citation.Comment,
			},
		}
	}

	_, issue, err := g.AddQualifiedEdge(ctx, source, target, rel, citation, er.Evidence, er.Annotations,
		decodeModifier(er.SourceModifier), decodeModifier(er.TargetModifier), er.Line, "")
	if err != nil {
		issues.Collect(diag.NewIssue(diag.Error, diag.E_ADAPTER_PARSE,
			fmt.Sprintf("edge %d: %v", index, err)).Build())
		return
	}
	if !issue.IsZero() {
		issues.Collect(issue)
	}
}

func decodeModifier(rec *modifierRecord) relation.Modifier {
	if rec == nil {
		return relation.Modifier{}
	}
	m := relation.Modifier{}
	switch rec.Kind {
	case "activity":
		m.Kind = relation.ActivityModifier
		if rec.Effect != nil {
			m.Effect = decodeConcept(*rec.Effect)
		}
	case "degradation":
		m.Kind = relation.DegradationModifier
	case "translocation":
		m.Kind = relation.TranslocationModifier
		if rec.FromLocation != nil {
			m.FromLocation = decodeConcept(*rec.FromLocation)
		}
		if rec.ToLocation != nil {
			m.ToLocation = decodeConcept(*rec.ToLocation)
		}
	}
	if rec.Location != nil {
		m.Location = decodeConcept(*rec.Location)
	}
	return m
}

func decodeConcept(rec conceptRecord) concept.Concept {
	if rec.Namespace == "" {
		c, err := concept.NewBare(firstNonEmpty(rec.Name, rec.Identifier))
		if err != nil {
			return concept.Concept{}
		}
		return c
	}
	c, err := concept.New(rec.Namespace, rec.Identifier, rec.Name)
	if err != nil {
		return concept.Concept{}
	}
	return c
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
