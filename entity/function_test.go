package entity

import "testing"

func TestParseFunction_Abbreviation(t *testing.T) {
	fn, ok := ParseFunction("p")
	if !ok || fn != Protein {
		t.Errorf("ParseFunction(%q) = %v, %v; want Protein, true", "p", fn, ok)
	}
}

func TestParseFunction_LongForm(t *testing.T) {
	fn, ok := ParseFunction("proteinAbundance")
	if !ok || fn != Protein {
		t.Errorf("ParseFunction(%q) = %v, %v; want Protein, true", "proteinAbundance", fn, ok)
	}
}

func TestParseFunction_Unrecognized(t *testing.T) {
	_, ok := ParseFunction("notAFunction")
	if ok {
		t.Error("expected ParseFunction to reject unrecognized token")
	}
}

func TestFunction_String(t *testing.T) {
	if Protein.String() != "p" {
		t.Errorf("String() = %q; want %q", Protein.String(), "p")
	}
}

func TestFunction_IsCentralDogma(t *testing.T) {
	for _, fn := range []Function{Gene, Rna, MicroRna, Protein} {
		if !fn.IsCentralDogma() {
			t.Errorf("%v.IsCentralDogma() = false; want true", fn)
		}
	}
	for _, fn := range []Function{Abundance, BiologicalProcess, Pathology, Population, ComplexAbundance, CompositeAbundance, ReactionFunction} {
		if fn.IsCentralDogma() {
			t.Errorf("%v.IsCentralDogma() = true; want false", fn)
		}
	}
}

func TestMustParseFunction_PanicsOnUnrecognized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustParseFunction to panic on unrecognized token")
		}
	}()
	MustParseFunction("notAFunction")
}
