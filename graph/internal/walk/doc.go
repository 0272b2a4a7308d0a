// Package walk provides structured traversal of a [graph.Graph] using the
// visitor pattern, for callers inside graph that need to process every node
// and edge without re-sorting the graph's accessors themselves. The nodelink
// encoder does not use it.
//
// # Visitor Pattern
//
// The [Visitor] interface defines callbacks for nodes and edges. Embed
// [BaseVisitor] to implement only the callback you need.
//
// # Traversal Order
//
// Nodes are visited in hash order, then edges in hash order, matching
// [graph.Graph.Nodes] and [graph.Graph.Edges].
//
// # Error Handling
//
// Visitor methods return errors to stop traversal. If any visitor method
// returns a non-nil error, or the context is cancelled, Walk returns that
// error immediately.
//
// # Usage
//
//	type counter struct {
//	    walk.BaseVisitor
//	    nodes int
//	}
//
//	func (c *counter) VisitNode(*graph.Node) error {
//	    c.nodes++
//	    return nil
//	}
//
//	v := &counter{}
//	if err := walk.Walk(ctx, g, v); err != nil {
//	    // handle error
//	}
package walk
