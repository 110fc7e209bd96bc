package elements

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		symbol   string
		number   int
		name     string
		mass     float64
		nominal  int
		isotopes int
	}{
		{"H", 1, "Hydrogen", 1.007941, 1, 2},
		{"C", 6, "Carbon", 12.01074, 12, 2},
		{"O", 8, "Oxygen", 15.999405, 16, 3},
		{"Fe", 26, "Iron", 55.845, 56, 4},
		{"U", 92, "Uranium", 238.02891, 238, 3},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			ele, ok := Lookup(tt.symbol)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.symbol)
			}
			if ele.Number != tt.number {
				t.Errorf("Number = %d, want %d", ele.Number, tt.number)
			}
			if ele.Name != tt.name {
				t.Errorf("Name = %q, want %q", ele.Name, tt.name)
			}
			if math.Abs(ele.Mass-tt.mass) > 1e-6 {
				t.Errorf("Mass = %f, want %f", ele.Mass, tt.mass)
			}
			if ele.NominalMass() != tt.nominal {
				t.Errorf("NominalMass() = %d, want %d", ele.NominalMass(), tt.nominal)
			}
			if len(ele.Isotopes) != tt.isotopes {
				t.Errorf("len(Isotopes) = %d, want %d", len(ele.Isotopes), tt.isotopes)
			}
			byNum, ok := ByNumber(tt.number)
			if !ok || byNum != ele {
				t.Errorf("ByNumber(%d) did not return the same element", tt.number)
			}
		})
	}

	if _, ok := Lookup("Xx"); ok {
		t.Error("Lookup(\"Xx\") should not find an element")
	}
}

func TestTableSize(t *testing.T) {
	if Count() != 109 {
		t.Errorf("Count() = %d, want 109", Count())
	}
}

func TestAbundanceConservation(t *testing.T) {
	// natural abundances of every element must sum to one
	for _, ele := range All() {
		if err := ele.Validate(); err != nil {
			t.Errorf("Validate() failed: %v", err)
		}
	}
}

func TestIsotopeLookup(t *testing.T) {
	carbon, _ := Lookup("C")

	iso, ok := carbon.Isotope(12)
	if !ok {
		t.Fatal("carbon should have isotope 12")
	}
	if iso.Mass != 12.0 {
		t.Errorf("12C mass = %v, want exactly 12.0", iso.Mass)
	}
	if _, ok := carbon.Isotope(11); ok {
		t.Error("carbon should not have isotope 11")
	}
}

func TestMostAbundant(t *testing.T) {
	hydrogen, _ := Lookup("H")
	iso := hydrogen.MostAbundant()
	if iso.MassNumber != 1 {
		t.Errorf("most abundant hydrogen isotope = %d, want 1", iso.MassNumber)
	}
	if math.Abs(iso.Abundance-0.999885) > 1e-9 {
		t.Errorf("1H abundance = %v, want 0.999885", iso.Abundance)
	}
}

func TestParticles(t *testing.T) {
	if math.Abs(Electron.Mass-5.48579909065e-4) > 1e-15 {
		t.Errorf("electron mass = %v", Electron.Mass)
	}
	if Electron.Charge >= 0 {
		t.Error("electron charge must be negative")
	}
	if Proton.Charge != ElementaryCharge {
		t.Error("proton charge must equal the elementary charge")
	}
	if Neutron.Charge != 0 {
		t.Error("neutron charge must be zero")
	}
}
