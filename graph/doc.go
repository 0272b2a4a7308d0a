// Package graph builds the in-memory BEL graph from parsed entities and
// relation assertions.
//
// It is the final layer in the BEL compilation pipeline:
//
//	Lexer → Metadata/Control Parser → Resource Resolver → Term/Relation Parser → Graph
//
// It handles:
//   - Content-hash node identity (two terms with the same canonical form
//     are the same node, regardless of how many times or where they occur)
//   - Structural inference: CentralDogma transcription/translation,
//     hasVariant, hasComponent/hasMember, hasReactant/hasProduct
//   - Citation and evidence validation for qualified edges
//
// # Thread Safety
//
// [Graph] is safe for concurrent use. Multiple goroutines may call
// [Graph.AddNode], [Graph.AddQualifiedEdge], and [Graph.AddUnqualifiedEdge]
// concurrently; insertion is idempotent under the same mutex.
//
// # Basic Usage
//
//	g := graph.New()
//	hash, err := g.AddNode(ctx, someEntity)
//
//	edgeHash, issue, err := g.AddQualifiedEdge(ctx, source, target,
//	    relation.Increases, citation, evidence, annotations,
//	    relation.Modifier{}, relation.Modifier{}, line, original)
//	if !issue.IsZero() {
//	    // citation/evidence validation failed; edge was not inserted
//	}
//
//	for _, n := range g.Nodes() {
//	    // n.Entity(), n.Hash()
//	}
//
// # Error Handling
//
// [Graph.AddNode] and [Graph.AddUnqualifiedEdge] return a Go error only for
// internal failures (nil receiver, nil entity). [Graph.AddQualifiedEdge]
// additionally returns a [diag.Issue] for data-shaped failures (missing
// citation, invalid PubMed reference, missing evidence): the edge is not
// inserted, and the failure is also recorded as a [Warning].
//
// # Ordering Guarantees
//
// [Graph.Nodes] and [Graph.Edges] return their results sorted by content
// hash, independent of insertion order or concurrency (spec.md §3.3
// invariant 7). [Graph.Warnings] preserves recording order.
package graph
