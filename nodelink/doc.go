// Package nodelink implements BEL's node-link JSON interchange format
// (spec.md §6.3): {nodes, edges, metadata, namespaces, annotations,
// warnings}. It serializes a [graph.Graph] for storage or transport and
// reconstructs one from previously-serialized bytes.
//
// Node and edge identity round-trips exactly: [Decode] reinserts every node
// and edge through the same [graph.Graph] construction path [bel.Compile]
// uses, so a decoded node or edge hashes to the same value it was encoded
// with, and [Encode] never writes a hash that [Decode] cannot reproduce.
//
// Entities are carried on the wire as their BEL canonical-form string (the
// same text [entity.Entity.Canonical] produces) rather than a hand-rolled
// discriminated struct per entity kind: canonical form is already a
// complete, grammar-valid BEL term, so decoding a node is just handing its
// canonical string to the same term parser that compiles a document.
package nodelink
