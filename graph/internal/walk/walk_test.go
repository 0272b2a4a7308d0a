package walk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/entity"
	"github.com/belgraph/bel/graph"
)

type counter struct {
	BaseVisitor
	nodes int
	edges int
}

func (c *counter) VisitNode(*graph.Node) error {
	c.nodes++
	return nil
}

func (c *counter) VisitEdge(*graph.Edge) error {
	c.edges++
	return nil
}

func buildTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	protein := entity.NewSimpleAbundance(entity.Protein, concept.MustNew("HGNC", "", "AKT1"), nil, concept.Concept{})
	_, err := g.AddNode(context.Background(), protein)
	require.NoError(t, err)
	return g
}

func TestWalk_VisitsNodesThenEdges(t *testing.T) {
	g := buildTestGraph(t)
	c := &counter{}
	require.NoError(t, Walk(context.Background(), g, c))
	require.Equal(t, 3, c.nodes) // AKT1 protein + inferred RNA and gene
	require.Equal(t, 2, c.edges) // RNA translatedTo Protein, Gene transcribedTo RNA
}

func TestWalk_NilGraph(t *testing.T) {
	c := &counter{}
	require.NoError(t, Walk(context.Background(), nil, c))
	require.Zero(t, c.nodes)
}

func TestWalk_NilVisitor(t *testing.T) {
	g := buildTestGraph(t)
	err := Walk(context.Background(), g, nil)
	require.ErrorIs(t, err, ErrNilVisitor)
}

func TestWalk_NilContextPanics(t *testing.T) {
	g := buildTestGraph(t)
	require.Panics(t, func() {
		//lint:ignore SA1012 verifying the documented nil-context contract
		_ = Walk(nil, g, &counter{})
	})
}

func TestWalk_StopsOnVisitorError(t *testing.T) {
	g := buildTestGraph(t)
	boom := errStop{}
	v := &erroringVisitor{err: boom}
	err := Walk(context.Background(), g, v)
	require.ErrorIs(t, err, boom)
}

type errStop struct{}

func (errStop) Error() string { return "stop" }

type erroringVisitor struct {
	BaseVisitor
	err error
}

func (v *erroringVisitor) VisitNode(*graph.Node) error {
	return v.err
}
