package walk

import "github.com/belgraph/bel/graph"

// Visitor receives callbacks during graph traversal.
//
// Each method returns an error to stop traversal. If any method returns
// a non-nil error, traversal stops immediately.
//
// Embed [BaseVisitor] to get no-op defaults for methods you don't need.
type Visitor interface {
	// VisitNode is called for each node, in hash order.
	VisitNode(n *graph.Node) error

	// VisitEdge is called for each edge, in hash order.
	VisitEdge(e *graph.Edge) error
}

// BaseVisitor provides no-op implementations of all Visitor methods.
type BaseVisitor struct{}

// VisitNode does nothing and returns nil.
func (BaseVisitor) VisitNode(*graph.Node) error { return nil }

// VisitEdge does nothing and returns nil.
func (BaseVisitor) VisitEdge(*graph.Edge) error { return nil }
