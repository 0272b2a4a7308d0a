package graph

import "github.com/belgraph/bel/entity"

// Node is one vertex of a Graph: an immutable entity.Entity together with
// its content hash, computed once at insertion (spec.md §3.3 invariant 7 —
// the hash depends only on the entity's canonical form, never on graph
// state or insertion order).
type Node struct {
	entity entity.Entity
	hash   [64]byte
}

// newNode wraps e, computing its hash.
func newNode(e entity.Entity) *Node {
	return &Node{entity: e, hash: e.Hash()}
}

// Entity returns the wrapped entity, or nil if n is nil.
func (n *Node) Entity() entity.Entity {
	if n == nil {
		return nil
	}
	return n.entity
}

// Hash returns n's content hash, or the zero hash if n is nil.
func (n *Node) Hash() [64]byte {
	if n == nil {
		return [64]byte{}
	}
	return n.hash
}

// Function returns the wrapped entity's function, or the zero Function if
// n or its entity is nil.
func (n *Node) Function() entity.Function {
	if n == nil || n.entity == nil {
		return 0
	}
	return n.entity.Function()
}

// Canonical returns the wrapped entity's canonical form, or "" if n or its
// entity is nil.
func (n *Node) Canonical() string {
	if n == nil || n.entity == nil {
		return ""
	}
	return n.entity.Canonical()
}
