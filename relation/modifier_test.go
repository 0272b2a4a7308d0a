package relation

import (
	"testing"

	"github.com/belgraph/bel/concept"
)

func TestActivity_NoEffect(t *testing.T) {
	m := Activity(concept.Concept{})
	if m.Kind != ActivityModifier {
		t.Errorf("Kind = %v; want ActivityModifier", m.Kind)
	}
	if !m.Effect.IsZero() {
		t.Error("expected zero Effect when no effect given")
	}
}

func TestActivity_WithEffect(t *testing.T) {
	kin := concept.MustNew("go", "", "kinase activity")
	m := Activity(kin)
	if !m.Effect.Equal(kin) {
		t.Errorf("Effect = %v; want %v", m.Effect, kin)
	}
}

func TestDegradation_NoEffectField(t *testing.T) {
	m := Degradation()
	if m.Kind != DegradationModifier {
		t.Errorf("Kind = %v; want DegradationModifier", m.Kind)
	}
}

func TestTranslocation(t *testing.T) {
	from := concept.MustNew("MESHCS", "", "Intracellular Space")
	to := concept.MustNew("MESHCS", "", "Extracellular Space")
	m := Translocation(from, to)
	if m.Kind != TranslocationModifier {
		t.Errorf("Kind = %v; want TranslocationModifier", m.Kind)
	}
	if !m.FromLocation.Equal(from) || !m.ToLocation.Equal(to) {
		t.Error("translocation endpoints not preserved")
	}
}

func TestSecreted_FixesCompartments(t *testing.T) {
	m := Secreted()
	if m.FromLocation.Name() != "Intracellular Space" {
		t.Errorf("FromLocation = %v; want intracellular", m.FromLocation)
	}
	if m.ToLocation.Name() != "Extracellular Space" {
		t.Errorf("ToLocation = %v; want extracellular", m.ToLocation)
	}
}

func TestSurfaceExpressed_FixesCompartments(t *testing.T) {
	m := SurfaceExpressed()
	if m.ToLocation.Name() != "Cell Surface" {
		t.Errorf("ToLocation = %v; want cell surface", m.ToLocation)
	}
}

func TestModifier_WithLocation(t *testing.T) {
	loc := concept.MustNew("MESHCS", "", "Nucleus")
	m := Degradation().WithLocation(loc)
	if !m.Location.Equal(loc) {
		t.Errorf("Location = %v; want %v", m.Location, loc)
	}
}

func TestModifier_IsZero(t *testing.T) {
	var m Modifier
	if !m.IsZero() {
		t.Error("zero Modifier should report IsZero() true")
	}
	if Degradation().IsZero() {
		t.Error("Degradation() should not report IsZero() true")
	}
}
