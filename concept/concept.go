// Package concept provides the minimal identity type shared by every BEL
// entity: a namespace-scoped concept reference.
//
// Per the foundation rule, concept imports only stdlib and [location]/[diag]
// for error reporting. It must not import entity, relation, graph, or any
// higher-level package.
package concept

import (
	"errors"
	"fmt"
)

// ErrEmptyNamespace is returned when a Concept is constructed with an empty namespace.
var ErrEmptyNamespace = errors.New("concept: namespace cannot be empty")

// ErrMissingIdentity is returned when a Concept is constructed with neither
// an identifier nor a name.
var ErrMissingIdentity = errors.New("concept: at least one of identifier or name is required")

// Concept is the minimal identity of a biological entity: a namespace prefix
// plus an optional identifier and/or name. At least one of Identifier and
// Name must be non-empty; the namespace is non-empty except in the bare,
// namespace-less concepts built by [NewBare].
//
// Concept is a value type: once constructed via [New], it is immutable.
type Concept struct {
	namespace  string
	identifier string
	name       string
}

// New constructs a Concept, validating that namespace is non-empty and that
// at least one of identifier or name is non-empty.
func New(namespace, identifier, name string) (Concept, error) {
	if namespace == "" {
		return Concept{}, ErrEmptyNamespace
	}
	if identifier == "" && name == "" {
		return Concept{}, ErrMissingIdentity
	}
	return Concept{namespace: namespace, identifier: identifier, name: name}, nil
}

// NewBare constructs a namespace-less Concept carrying only a name, for BEL's
// default-vocabulary modification keywords (e.g. `pmod(Ph)`'s "Ph") that are
// not backed by a DEFINE'd namespace. name must be non-empty.
func NewBare(name string) (Concept, error) {
	if name == "" {
		return Concept{}, ErrMissingIdentity
	}
	return Concept{name: name}, nil
}

// MustNewBare is like [NewBare] but panics on error.
func MustNewBare(name string) Concept {
	c, err := NewBare(name)
	if err != nil {
		panic(fmt.Sprintf("concept.MustNewBare(%q): %v", name, err))
	}
	return c
}

// MustNew is like [New] but panics on error. Intended for tests and
// statically-known concepts (e.g. fixed location vocabularies).
func MustNew(namespace, identifier, name string) Concept {
	c, err := New(namespace, identifier, name)
	if err != nil {
		panic(fmt.Sprintf("concept.MustNew(%q, %q, %q): %v", namespace, identifier, name, err))
	}
	return c
}

// Namespace returns the concept's namespace prefix.
func (c Concept) Namespace() string { return c.namespace }

// Identifier returns the concept's identifier, or "" if unset.
func (c Concept) Identifier() string { return c.identifier }

// Name returns the concept's name, or "" if unset.
func (c Concept) Name() string { return c.name }

// IsZero reports whether c is the zero Concept.
func (c Concept) IsZero() bool {
	return c.namespace == "" && c.identifier == "" && c.name == ""
}

// Value returns whichever of Identifier or Name is set, preferring Identifier.
// This is the value used inside a canonical form's `ns:value` pair.
func (c Concept) Value() string {
	if c.identifier != "" {
		return c.identifier
	}
	return c.name
}

// String returns a debug representation "namespace:value", not the canonical form.
// Use the canon package to obtain a canonical form suitable for hashing.
func (c Concept) String() string {
	return c.namespace + ":" + c.Value()
}

// Equal reports whether c and other have identical namespace, identifier, and name.
func (c Concept) Equal(other Concept) bool {
	return c.namespace == other.namespace && c.identifier == other.identifier && c.name == other.name
}
