package canon

import (
	"testing"

	"github.com/belgraph/bel/concept"
	"github.com/belgraph/bel/relation"
)

func TestHashEdge_Deterministic(t *testing.T) {
	in := EdgeInput{
		Relation:    "increases",
		Citation:    EdgeCitation{Type: "PubMed", Reference: "12345"},
		Evidence:    "ex",
		Annotations: map[string][]string{"CellLine": {"MCF-7"}},
		SourceHash:  "aa",
		TargetHash:  "bb",
	}
	h1 := HashEdge(in)
	h2 := HashEdge(in)
	if h1 != h2 {
		t.Error("identical edge input should hash identically")
	}
}

func TestHashEdge_AnnotationOrderInsensitive(t *testing.T) {
	in1 := EdgeInput{
		Relation:    "increases",
		SourceHash:  "aa",
		TargetHash:  "bb",
		Annotations: map[string][]string{"CellLine": {"HeLa", "MCF-7"}},
	}
	in2 := EdgeInput{
		Relation:    "increases",
		SourceHash:  "aa",
		TargetHash:  "bb",
		Annotations: map[string][]string{"CellLine": {"MCF-7", "HeLa"}},
	}
	if HashEdge(in1) != HashEdge(in2) {
		t.Error("annotation value order should not affect hash")
	}
}

func TestHashEdge_ExcludesLine(t *testing.T) {
	// EdgeInput has no Line field at all; this test documents that
	// omission is intentional rather than an oversight.
	in := EdgeInput{Relation: "increases", SourceHash: "aa", TargetHash: "bb"}
	if HashEdge(in) != HashEdge(in) {
		t.Fatal("HashEdge should be a pure function of its input")
	}
}

func TestModifierCanonical_Degradation(t *testing.T) {
	m := relation.Degradation()
	if got := ModifierCanonical(m); got != "deg()" {
		t.Errorf("ModifierCanonical() = %q; want %q", got, "deg()")
	}
}

func TestModifierCanonical_Translocation(t *testing.T) {
	from := concept.MustNew("MESHCS", "", "Intracellular Space")
	to := concept.MustNew("MESHCS", "", "Extracellular Space")
	m := relation.Translocation(from, to)
	got := ModifierCanonical(m)
	want := `tloc(fromLoc(MESHCS:"Intracellular Space"), toLoc(MESHCS:"Extracellular Space"))`
	if got != want {
		t.Errorf("ModifierCanonical() = %q; want %q", got, want)
	}
}

func TestModifierCanonical_Zero(t *testing.T) {
	var m relation.Modifier
	if got := ModifierCanonical(m); got != "" {
		t.Errorf("ModifierCanonical(zero) = %q; want empty", got)
	}
}
