package entity

import (
	"testing"

	"github.com/belgraph/bel/concept"
)

func fos() SimpleAbundance {
	return NewSimpleAbundance(Protein, concept.MustNew("HGNC", "", "FOS"), nil, concept.Concept{})
}

func jun() SimpleAbundance {
	return NewSimpleAbundance(Protein, concept.MustNew("HGNC", "", "JUN"), nil, concept.Concept{})
}

func TestListAbundance_MemberOrderInvariance(t *testing.T) {
	c1 := NewListAbundance(ComplexAbundance, []Entity{fos(), jun()}, concept.Concept{})
	c2 := NewListAbundance(ComplexAbundance, []Entity{jun(), fos()}, concept.Concept{})
	if c1.Hash() != c2.Hash() {
		t.Errorf("member order should not affect hash: %q != %q", c1.Canonical(), c2.Canonical())
	}
}

func TestListAbundance_DuplicateMembersDeduped(t *testing.T) {
	c := NewListAbundance(ComplexAbundance, []Entity{fos(), fos(), jun()}, concept.Concept{})
	if len(c.Members()) != 2 {
		t.Errorf("Members() len = %d; want 2 after dedup", len(c.Members()))
	}
}

func TestListAbundance_NamedComplex_NamePrecedesMembers(t *testing.T) {
	named := concept.MustNew("GO", "", "AP-1 complex")
	c := NewListAbundance(ComplexAbundance, []Entity{fos(), jun()}, named)
	canon := c.Canonical()
	if canon[:7] != "complex" {
		t.Errorf("Canonical() = %q; want prefix %q", canon, "complex")
	}
	if !contains(canon, `GO:"AP-1 complex"`) {
		t.Errorf("Canonical() = %q; want it to contain named complex identity", canon)
	}
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}

func TestListAbundance_EmptyComplex(t *testing.T) {
	c := NewListAbundance(ComplexAbundance, nil, concept.Concept{})
	want := "complex()"
	if got := c.Canonical(); got != want {
		t.Errorf("Canonical() = %q; want %q", got, want)
	}
}
