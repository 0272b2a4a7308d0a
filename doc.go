// Package bel compiles Biological Expression Language documents into a
// content-addressed [graph.Graph].
//
// A BEL document is a sequence of lines running through five stages: the
// lexer joins continuations and strips comments, the directive parser
// dispatches SET/DEFINE/UNSET control lines against per-compilation state,
// the resource resolver fetches any declared namespace or annotation URL,
// the term/relation parser turns everything else into subject-relation-
// object statements, and the graph model canonicalizes and inserts the
// resulting nodes and edges.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: source positions, spans, and document identifiers
//	  - diag: structured diagnostics with stable error codes
//	  - concept: the (namespace, identifier) pair BEL terms reference
//
//	Core library tier:
//	  - entity: the closed abundance/reaction/fusion term model
//	  - relation: the closed relation enumeration and subject/object modifiers
//	  - canon: edge canonicalization and content hashing
//	  - resource: namespace/annotation resolution and caching
//
//	Compiler tier:
//	  - lexer: line assembly and comment stripping
//	  - directive: the metadata and control-line parser
//	  - parser: the term/relation grammar
//	  - graph: the in-memory graph model and structural inference rules
//
//	Wire tier:
//	  - nodelink: the node-link JSON interchange format
//
// # Entry Points
//
// Compiling a document:
//
//	g, result := bel.Compile(ctx, lines, bel.WithRequiredAnnotations([]string{"species"}))
//	if result.HasFatal() {
//	    // the document never reached a usable state; g may be incomplete
//	}
//	if !result.OK() {
//	    // one or more statements failed to insert; g still holds the rest
//	}
//
// Parsing a single statement without graph construction:
//
//	stmt, issues := bel.Parse(`p(HGNC:AKT1) increases p(HGNC:JUN)`)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/belgraph/bel/diag]: structured diagnostics
//   - [github.com/belgraph/bel/location]: source location tracking
//   - [github.com/belgraph/bel/concept]: namespace/identifier references
//   - [github.com/belgraph/bel/entity]: the BEL term model
//   - [github.com/belgraph/bel/relation]: relations and modifiers
//   - [github.com/belgraph/bel/canon]: edge canonicalization and hashing
//   - [github.com/belgraph/bel/resource]: namespace/annotation resolution
//   - [github.com/belgraph/bel/lexer]: line preprocessing
//   - [github.com/belgraph/bel/directive]: the metadata/control parser
//   - [github.com/belgraph/bel/parser]: the term/relation parser
//   - [github.com/belgraph/bel/graph]: the graph model
//   - [github.com/belgraph/bel/nodelink]: node-link JSON wire format
package bel
