package entity

import "github.com/belgraph/bel/concept"

// Reaction is `rxn(reactants(...), products(...))`: two ordered sets of
// member entities, and an optional named Concept.
type Reaction struct {
	reactants []Entity
	products  []Entity
	named     concept.Concept
}

// NewReaction constructs a Reaction. Unlike ListAbundance, reactant/product
// membership is not de-duplicated here: duplicate stoichiometric
// participants (e.g. `2 H2O`, modeled as repeated terms) are meaningful.
func NewReaction(reactants, products []Entity, named concept.Concept) Reaction {
	r := make([]Entity, len(reactants))
	copy(r, reactants)
	p := make([]Entity, len(products))
	copy(p, products)
	return Reaction{reactants: r, products: p, named: named}
}

// Function implements [Entity].
func (e Reaction) Function() Function { return ReactionFunction }

// Reactants returns the ordered reactant list.
func (e Reaction) Reactants() []Entity { return e.reactants }

// Products returns the ordered product list.
func (e Reaction) Products() []Entity { return e.products }

// Named returns the reaction's named Concept, or the zero Concept.
func (e Reaction) Named() concept.Concept { return e.named }

// Canonical implements [Entity]. Reactants and products are independently
// sorted by canonical form (permutations within either set do not change
// the hash; swapping the two sets does, since they are rendered in fixed
// reactants-then-products order — spec.md §8 property 2).
func (e Reaction) Canonical() string {
	reactantForms := make([]string, len(e.reactants))
	for i, m := range e.reactants {
		reactantForms[i] = m.Canonical()
	}
	sortedCanonical(reactantForms)

	productForms := make([]string, len(e.products))
	for i, m := range e.products {
		productForms[i] = m.Canonical()
	}
	sortedCanonical(productForms)

	return "rxn(reactants(" + joinCanonical(reactantForms) + "), products(" + joinCanonical(productForms) + "))"
}

// Hash implements [Entity].
func (e Reaction) Hash() [64]byte {
	return Hash(e.Canonical())
}
