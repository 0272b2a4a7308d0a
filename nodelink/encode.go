package nodelink

import (
	"encoding/hex"
	"encoding/json"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/graph"
	"github.com/belgraph/bel/internal/normalize"
	"github.com/belgraph/bel/relation"
)

// EncodeOption configures [Encode].
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	indent string
}

// WithIndent pretty-prints the encoded document using indent as the nesting
// prefix (e.g. "  "). The default, an empty indent, produces compact JSON.
func WithIndent(indent string) EncodeOption {
	return func(c *encodeConfig) { c.indent = indent }
}

// Encode serializes g as a node-link JSON document. meta, namespaces, and
// annotations populate the document's metadata/namespaces/annotations
// fields; a caller compiling through [bel.Compile] typically sources
// namespaces and annotations from the [directive.Context]'s
// NamespaceKeywords/AnnotationKeywords accessors.
func Encode(g *graph.Graph, meta DocumentMetadata, namespaces, annotations []string, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := document{
		Metadata:    normalize.Normalize(meta).(map[string]any),
		Namespaces:  namespaces,
		Annotations: annotations,
	}

	nodes := g.Nodes()
	doc.Nodes = make([]nodeRecord, len(nodes))
	for i, n := range nodes {
		doc.Nodes[i] = nodeRecord{
			Hash:      hex.EncodeToString(n.Hash()[:]),
			Function:  n.Function().String(),
			Canonical: n.Canonical(),
		}
	}

	edges := g.Edges()
	doc.Edges = make([]edgeRecord, len(edges))
	for i, e := range edges {
		doc.Edges[i] = encodeEdge(e)
	}

	for _, w := range g.Warnings() {
		doc.Warnings = append(doc.Warnings, warningRecord{
			Line:     w.Line,
			Original: w.Original,
			Code:     w.Code.String(),
			Message:  w.Message,
		})
	}

	if cfg.indent != "" {
		return json.MarshalIndent(doc, "", cfg.indent)
	}
	return json.Marshal(doc)
}

func encodeEdge(e *graph.Edge) edgeRecord {
	rec := edgeRecord{
		Hash:        hex.EncodeToString(e.Hash()[:]),
		SourceHash:  hex.EncodeToString(e.Source().Hash()[:]),
		TargetHash:  hex.EncodeToString(e.Target().Hash()[:]),
		Relation:    e.Relation().String(),
		Evidence:    e.Evidence(),
		Annotations: e.Annotations(),
		Line:        e.Line(),
		Qualified:   e.Qualified(),
	}
	if sm := encodeModifier(e.SourceModifier()); sm != nil {
		rec.SourceModifier = sm
	}
	if tm := encodeModifier(e.TargetModifier()); tm != nil {
		rec.TargetModifier = tm
	}
	if e.Qualified() {
		c := e.Citation()
		rec.Citation = &citationRecord{
			Type:      c.Type,
			Name:      c.Name,
			Reference: c.Reference,
			Date:      c.Metadata.Date,
			Authors:   c.Metadata.Authors,
			Comment:   c.Metadata.Comment,
		}
	}
	return rec
}

func encodeModifier(m relation.Modifier) *modifierRecord {
	if m.IsZero() {
		return nil
	}
	rec := &modifierRecord{Kind: modifierKindName(m.Kind)}
	if !m.Effect.IsZero() {
		rec.Effect = encodeConcept(m.Effect)
	}
	if !m.FromLocation.IsZero() {
		rec.FromLocation = encodeConcept(m.FromLocation)
	}
	if !m.ToLocation.IsZero() {
		rec.ToLocation = encodeConcept(m.ToLocation)
	}
	if !m.Location.IsZero() {
		rec.Location = encodeConcept(m.Location)
	}
	return rec
}

func encodeConcept(c concept.Concept) *conceptRecord {
	return &conceptRecord{Namespace: c.Namespace(), Identifier: c.Identifier(), Name: c.Name()}
}

func modifierKindName(k relation.ModifierKind) string {
	switch k {
	case relation.ActivityModifier:
		return "activity"
	case relation.DegradationModifier:
		return "degradation"
	case relation.TranslocationModifier:
		return "translocation"
	default:
		return ""
	}
}
