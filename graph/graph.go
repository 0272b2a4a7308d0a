package graph

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/belgraph/bel/canon"
	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/diag"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/immutable"
	"github.com/belgraph/bel/internal/trace"
	"github.com/belgraph/bel/relation"
)

// Graph is the in-memory BEL graph: a content-addressed set of [Node]s and
// [Edge]s. The zero Graph is not usable; construct one with [New].
type Graph struct {
	mu     sync.RWMutex
	config graphConfig

	nodes map[[64]byte]*Node
	edges map[[64]byte]*Edge

	warnings []Warning
}

// New constructs an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		config: cfg,
		nodes:  make(map[[64]byte]*Node),
		edges:  make(map[[64]byte]*Edge),
	}
}

// AddNode inserts e into the graph, idempotently (re-adding an entity with
// the same canonical form is a no-op beyond returning its existing hash),
// and expands the structural inference edges spec.md §3.3 invariants 4-6
// require: hasVariant for variant-bearing entities, the Gene/Protein
// transcription-translation chain, and hasComponent/hasMember/hasReactant/
// hasProduct for collection and reaction entities.
func (g *Graph) AddNode(ctx context.Context, e entity.Entity) ([64]byte, error) {
	if g == nil {
		return [64]byte{}, ErrNilGraph
	}
	if e == nil {
		return [64]byte{}, ErrNilEntity
	}
	op := trace.Begin(ctx, g.config.logger, "bel.graph.add_node", slog.String("function", e.Function().String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	hash, err := g.addNodeLocked(ctx, e)
	retErr = err
	return hash, err
}

func (g *Graph) addNodeLocked(ctx context.Context, e entity.Entity) ([64]byte, error) {
	node := newNode(e)
	hash := node.hash
	if _, exists := g.nodes[hash]; exists {
		return hash, nil
	}
	g.nodes[hash] = node
	trace.Debug(ctx, g.config.logger, "node inserted",
		slog.String("function", e.Function().String()),
		slog.String("hash", hex.EncodeToString(hash[:8])))
	if err := g.expandInferencesLocked(ctx, e); err != nil {
		return hash, err
	}
	return hash, nil
}

// expandInferencesLocked dispatches to the per-kind structural inference
// rule. Fusion entities carry no inference edges under the current spec.
func (g *Graph) expandInferencesLocked(ctx context.Context, e entity.Entity) error {
	switch v := e.(type) {
	case entity.SimpleAbundance:
		return g.expandSimpleAbundanceLocked(ctx, v)
	case entity.ListAbundance:
		return g.expandListAbundanceLocked(ctx, v)
	case entity.Reaction:
		return g.expandReactionLocked(ctx, v)
	default:
		return nil
	}
}

// expandSimpleAbundanceLocked implements invariant 5 (hasVariant) and
// invariant 4 (CentralDogma transcription/translation). The CentralDogma
// chain is rooted at the variant-free parent form, since Protein(ns,name)
// and Gene(ns,name) name a concept identity, not a specific variant.
func (g *Graph) expandSimpleAbundanceLocked(ctx context.Context, sa entity.SimpleAbundance) error {
	base := sa
	if len(sa.Variants()) > 0 {
		parent := sa.Parent()
		if _, err := g.addNodeLocked(ctx, parent); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, sa, parent, relation.HasVariant); err != nil {
			return err
		}
		base = parent
	}
	if !base.Function().IsCentralDogma() {
		return nil
	}
	switch base.Function() {
	case entity.Protein:
		rna := entity.NewSimpleAbundance(entity.Rna, base.Concept(), nil, concept.Concept{})
		if _, err := g.addNodeLocked(ctx, rna); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, rna, base, relation.TranslatedTo); err != nil {
			return err
		}
	case entity.Rna:
		gene := entity.NewSimpleAbundance(entity.Gene, base.Concept(), nil, concept.Concept{})
		if _, err := g.addNodeLocked(ctx, gene); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, gene, base, relation.TranscribedTo); err != nil {
			return err
		}
	case entity.Gene:
		rna := entity.NewSimpleAbundance(entity.Rna, base.Concept(), nil, concept.Concept{})
		if _, err := g.addNodeLocked(ctx, rna); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, base, rna, relation.TranscribedTo); err != nil {
			return err
		}
	}
	return nil
}

// expandListAbundanceLocked implements invariant 6 for complexes and
// composites: every member gets a hasComponent (ComplexAbundance) or
// hasMember (CompositeAbundance) edge from the collection to the member.
func (g *Graph) expandListAbundanceLocked(ctx context.Context, la entity.ListAbundance) error {
	var rel relation.Relation
	switch la.Function() {
	case entity.ComplexAbundance:
		rel = relation.HasComponent
	case entity.CompositeAbundance:
		rel = relation.HasMember
	default:
		return nil
	}
	for _, m := range la.Members() {
		if _, err := g.addNodeLocked(ctx, m); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, la, m, rel); err != nil {
			return err
		}
	}
	return nil
}

// expandReactionLocked implements invariant 6 for reactions: every
// reactant/product gets a hasReactant/hasProduct edge from the reaction.
func (g *Graph) expandReactionLocked(ctx context.Context, r entity.Reaction) error {
	for _, m := range r.Reactants() {
		if _, err := g.addNodeLocked(ctx, m); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, r, m, relation.HasReactant); err != nil {
			return err
		}
	}
	for _, m := range r.Products() {
		if _, err := g.addNodeLocked(ctx, m); err != nil {
			return err
		}
		if _, err := g.addUnqualifiedEdgeLocked(ctx, r, m, relation.HasProduct); err != nil {
			return err
		}
	}
	return nil
}

// AddUnqualifiedEdge inserts an unqualified edge (spec.md §3.3 invariant 2's
// structural relations: hasVariant, hasComponent, hasMember, hasReactant,
// hasProduct, transcribedTo, translatedTo, equivalentTo, partOf), adding
// source and target as nodes first if they are not already present.
// Insertion is idempotent: re-adding the same (source, target, relation)
// triple returns the existing edge's hash.
func (g *Graph) AddUnqualifiedEdge(ctx context.Context, source, target entity.Entity, rel relation.Relation) ([64]byte, error) {
	if g == nil {
		return [64]byte{}, ErrNilGraph
	}
	if source == nil || target == nil {
		return [64]byte{}, ErrNilEntity
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addUnqualifiedEdgeLocked(ctx, source, target, rel)
}

func (g *Graph) addUnqualifiedEdgeLocked(ctx context.Context, source, target entity.Entity, rel relation.Relation) ([64]byte, error) {
	sourceHash, err := g.addNodeLocked(ctx, source)
	if err != nil {
		return [64]byte{}, err
	}
	targetHash, err := g.addNodeLocked(ctx, target)
	if err != nil {
		return [64]byte{}, err
	}
	in := canon.EdgeInput{
		Relation:   rel.String(),
		SourceHash: hex.EncodeToString(sourceHash[:]),
		TargetHash: hex.EncodeToString(targetHash[:]),
	}
	hash := canon.HashEdge(in)
	if _, exists := g.edges[hash]; exists {
		return hash, nil
	}
	g.edges[hash] = newEdge(rel, g.nodes[sourceHash], g.nodes[targetHash], relation.Modifier{}, relation.Modifier{}, Citation{}, "", nil, 0, false, hash)
	trace.Debug(ctx, g.config.logger, "unqualified edge inserted", slog.String("relation", rel.String()))
	return hash, nil
}

// AddQualifiedEdge inserts a qualified edge, validating citation and
// evidence per spec.md §3.3 invariants 2-3. On validation failure it
// records a [Warning] at line (the edge is not inserted) and returns the
// failing [diag.Issue] instead of a Go error: a missing citation is a data
// problem, not a programmer error.
func (g *Graph) AddQualifiedEdge(
	ctx context.Context,
	source, target entity.Entity,
	rel relation.Relation,
	citation Citation,
	evidence string,
	annotations map[string][]string,
	sourceMod, targetMod relation.Modifier,
	line int,
	original string,
) ([64]byte, diag.Issue, error) {
	if g == nil {
		return [64]byte{}, diag.Issue{}, ErrNilGraph
	}
	if source == nil || target == nil {
		return [64]byte{}, diag.Issue{}, ErrNilEntity
	}
	op := trace.Begin(ctx, g.config.logger, "bel.graph.add_qualified_edge", slog.String("relation", rel.String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if issue, ok := validateCitation(citation, evidence); !ok {
		g.warnings = append(g.warnings, newWarning(line, original, issue))
		return [64]byte{}, issue, nil
	}

	sourceHash, err := g.addNodeLocked(ctx, source)
	if err != nil {
		retErr = err
		return [64]byte{}, diag.Issue{}, err
	}
	targetHash, err := g.addNodeLocked(ctx, target)
	if err != nil {
		retErr = err
		return [64]byte{}, diag.Issue{}, err
	}

	in := canon.EdgeInput{
		Relation:       rel.String(),
		SourceModifier: canon.ModifierCanonical(sourceMod),
		TargetModifier: canon.ModifierCanonical(targetMod),
		Citation:       canon.EdgeCitation{Type: citation.Type, Reference: citation.Reference},
		Evidence:       evidence,
		Annotations:    annotations,
		SourceHash:     hex.EncodeToString(sourceHash[:]),
		TargetHash:     hex.EncodeToString(targetHash[:]),
	}
	hash := canon.HashEdge(in)
	if _, exists := g.edges[hash]; exists {
		return hash, diag.Issue{}, nil
	}
	g.edges[hash] = newEdge(rel, g.nodes[sourceHash], g.nodes[targetHash], sourceMod, targetMod, citation, evidence, copyAnnotations(annotations), line, true, hash)
	trace.Debug(ctx, g.config.logger, "qualified edge inserted", slog.String("relation", rel.String()))
	return hash, diag.Issue{}, nil
}

// validateCitation checks spec.md §3.3 invariants 2-3: a qualified edge
// needs a non-empty citation and evidence, and a PubMed citation needs a
// numeric reference. Other recognized citation types are accepted without
// further validation.
func validateCitation(citation Citation, evidence string) (diag.Issue, bool) {
	if citation.IsZero() {
		return diag.NewIssue(diag.Error, diag.E_MISSING_CITATION, "qualified relation requires a citation").Build(), false
	}
	if citation.Type == "" || citation.Reference == "" {
		return diag.NewIssue(diag.Error, diag.E_INVALID_CITATION, "citation is missing its required type or reference").Build(), false
	}
	if !recognizedCitationTypes[citation.Type] {
		return diag.NewIssue(diag.Error, diag.E_INVALID_CITATION_TYPE,
			fmt.Sprintf("citation type %q is not recognized", citation.Type)).Build(), false
	}
	if citation.isPubMed() && !isNumericReference(citation.Reference) {
		return diag.NewIssue(diag.Error, diag.E_INVALID_PUBMED_IDENTIFIER,
			fmt.Sprintf("PubMed citation reference %q is not numeric", citation.Reference)).Build(), false
	}
	if evidence == "" {
		return diag.NewIssue(diag.Error, diag.E_MISSING_EVIDENCE, "qualified relation requires evidence").Build(), false
	}
	return diag.Issue{}, true
}

// copyAnnotations takes a defensive, deduplicated, sorted snapshot of an
// edge's annotation sets. A single asserted value ("SET Key = \"v\"") and a
// repeated assertion of the same key both collapse to a one-element set;
// the sort makes the stored representation match the order annotations are
// always emitted in on output, independent of assertion order.
func copyAnnotations(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, vs := range in {
		out[k] = immutable.WrapStringSet(vs).Slice()
	}
	return out
}

// Warnings returns the accumulated compile warnings in the order they were
// recorded (spec.md §6.2's ordered (line, kind, message, original) sequence).
func (g *Graph) Warnings() []Warning {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Warning, len(g.warnings))
	copy(out, g.warnings)
	return out
}

// Nodes returns every node in the graph, ordered by hash for determinism
// (spec.md §6.2's nodes() abstract operation).
func (g *Graph) Nodes() []*Node {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return hashLess(out[i].hash, out[j].hash)
	})
	return out
}

// Edges returns every edge in the graph, ordered by hash for determinism
// (spec.md §6.2's edges() abstract operation).
func (g *Graph) Edges() []*Edge {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return hashLess(out[i].hash, out[j].hash)
	})
	return out
}

// NodeByHash returns the node with the given hash, or nil if none exists.
func (g *Graph) NodeByHash(hash [64]byte) *Node {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[hash]
}

func hashLess(a, b [64]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
