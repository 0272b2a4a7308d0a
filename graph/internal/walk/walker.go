package walk

import (
	"context"
	"errors"
	"log/slog"

	"github.com/belgraph/bel/graph"
	"github.com/belgraph/bel/internal/trace"
)

// ErrNilVisitor is returned when Walk is called with a nil visitor.
var ErrNilVisitor = errors.New("walk: nil visitor")

// WalkOption configures the walker behavior.
type WalkOption func(*walkConfig)

type walkConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging during traversal.
func WithLogger(logger *slog.Logger) WalkOption {
	return func(cfg *walkConfig) {
		cfg.logger = logger
	}
}

// Walk traverses g, calling visitor methods in deterministic hash order:
// every node, then every edge (spec.md §3.3 invariant 7). Returns on the
// first error from the visitor or if ctx is cancelled.
func Walk(ctx context.Context, g *graph.Graph, visitor Visitor, opts ...WalkOption) error {
	if ctx == nil {
		panic("walk.Walk: nil context")
	}
	if g == nil {
		return nil
	}
	if visitor == nil {
		return ErrNilVisitor
	}

	cfg := walkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := g.Nodes()
	edges := g.Edges()

	op := trace.Begin(ctx, cfg.logger, "bel.walk.graph",
		slog.Int("node_count", len(nodes)),
		slog.Int("edge_count", len(edges)),
	)
	err := walk(ctx, cfg, visitor, nodes, edges)
	op.End(err)
	return err
}

func walk(ctx context.Context, cfg walkConfig, visitor Visitor, nodes []*graph.Node, edges []*graph.Edge) error {
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context errors should be returned unwrapped
		}
		trace.Debug(ctx, cfg.logger, "visiting node", slog.String("function", n.Function().String()))
		if err := visitor.VisitNode(n); err != nil {
			return err //nolint:wrapcheck // visitor errors pass through unwrapped
		}
	}
	for _, e := range edges {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context errors should be returned unwrapped
		}
		trace.Debug(ctx, cfg.logger, "visiting edge", slog.String("relation", e.Relation().String()))
		if err := visitor.VisitEdge(e); err != nil {
			return err //nolint:wrapcheck // visitor errors pass through unwrapped
		}
	}
	return nil
}
