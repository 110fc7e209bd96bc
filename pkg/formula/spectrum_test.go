package formula

import (
	"math"
	"strings"
	"testing"
)

func TestSpectrumNatural(t *testing.T) {
	s := mustParse(t, "H").Spectrum(0, 0)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	tests := []struct {
		massnumber int
		mass       float64
		fraction   float64
	}{
		{1, 1.00782503223, 0.999885},
		{2, 2.01410177812, 0.000115},
	}
	for i, want := range tests {
		got := s.Entries[i]
		if got.MassNumber != want.massnumber {
			t.Errorf("entry %d mass number = %d, want %d", i, got.MassNumber, want.massnumber)
		}
		if math.Abs(got.Mass-want.mass) > 1e-9 {
			t.Errorf("entry %d mass = %v, want %v", i, got.Mass, want.mass)
		}
		if math.Abs(got.Fraction-want.fraction) > 1e-9 {
			t.Errorf("entry %d fraction = %v, want %v", i, got.Fraction, want.fraction)
		}
	}
	if s.Entries[0].Intensity != 100.0 {
		t.Errorf("peak intensity = %v, want exactly 100.0", s.Entries[0].Intensity)
	}
	if sum := s.Entries[0].Fraction + s.Entries[1].Fraction; math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("fractions sum to %v, want 1.0", sum)
	}
}

func TestSpectrumFixedIsotope(t *testing.T) {
	// explicit isotopes shift the whole spectrum without spreading it
	s := mustParse(t, "D2").Spectrum(0, 0)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	entry := s.Entries[0]
	if entry.MassNumber != 4 {
		t.Errorf("mass number = %d, want 4", entry.MassNumber)
	}
	if math.Abs(entry.Mass-4.02820355624) > 1e-9 {
		t.Errorf("mass = %v, want 4.02820355624", entry.Mass)
	}
	if entry.Fraction != 1.0 {
		t.Errorf("fraction = %v, want 1.0", entry.Fraction)
	}
}

func TestSpectrumConvolution(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		fractions map[int]float64
	}{
		{
			name:  "two equivalent atoms",
			input: "H2",
			fractions: map[int]float64{
				2: 0.99977001,
				3: 0.00022997,
				4: 0.0000000132,
			},
		},
		{
			name:  "mixed fixed and natural",
			input: "DH",
			fractions: map[int]float64{
				3: 0.999885,
				4: 0.000115,
			},
		},
		{
			name:  "three elements",
			input: "DHO",
			fractions: map[int]float64{
				19: 0.99745528,
				20: 0.00049468,
				21: 0.00204981,
				22: 0.00000024,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustParse(t, tt.input).Spectrum(0, 0)
			if s.Len() != len(tt.fractions) {
				t.Fatalf("Len() = %d, want %d", s.Len(), len(tt.fractions))
			}
			for _, entry := range s.Entries {
				want, ok := tt.fractions[entry.MassNumber]
				if !ok {
					t.Errorf("unexpected bin %d", entry.MassNumber)
					continue
				}
				if math.Abs(entry.Fraction-want) > 1e-8 {
					t.Errorf("bin %d fraction = %v, want %v", entry.MassNumber, entry.Fraction, want)
				}
			}
		})
	}
}

func TestSpectrumCharged(t *testing.T) {
	// palmitate anion; mz includes the extra electron
	s := mustParse(t, "C16H31O2-").Spectrum(0, 0.001)
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}
	wantIntensities := map[int]float64{
		255: 100.0,
		256: 17.738,
		257: 1.891,
		258: 0.150,
		259: 0.009,
	}
	for _, entry := range s.Entries {
		want, ok := wantIntensities[entry.MassNumber]
		if !ok {
			t.Errorf("unexpected bin %d", entry.MassNumber)
			continue
		}
		if math.Abs(entry.Intensity-want) > 0.001 {
			t.Errorf("bin %d intensity = %v, want %v", entry.MassNumber, entry.Intensity, want)
		}
	}
	peak := s.Peak()
	if peak.MassNumber != 255 {
		t.Errorf("peak bin = %d, want 255", peak.MassNumber)
	}
	if math.Abs(peak.MZ-255.232954) > 1e-6 {
		t.Errorf("peak mz = %v, want 255.232954", peak.MZ)
	}

	// doubly charged ion halves the mz
	s = mustParse(t, "C16H31O2_2-").Spectrum(0, 0)
	peak = s.Peak()
	if got, want := peak.MZ, peak.Mass/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("mz = %v, want %v", got, want)
	}
}

func TestSpectrumRange(t *testing.T) {
	s := mustParse(t, "DHO").Spectrum(0, 0)
	low, high := s.Range()
	if low != 19 || high != 22 {
		t.Errorf("Range() = %d, %d, want 19, 22", low, high)
	}
}

func TestSpectrumMean(t *testing.T) {
	f := mustParse(t, "H2O")
	mean := f.Spectrum(0, 0).Mean()
	if math.Abs(mean-f.Mass()) > 1e-4 {
		t.Errorf("Mean() = %v, want close to average mass %v", mean, f.Mass())
	}
}

func TestSpectrumPruning(t *testing.T) {
	// a large minimum fraction collapses glucose to its dominant bins
	f := mustParse(t, "C6H12O6")
	coarse := f.Spectrum(1e-3, 0)
	fine := f.Spectrum(1e-12, 0)
	if coarse.Len() >= fine.Len() {
		t.Errorf("pruned spectrum has %d bins, unpruned %d", coarse.Len(), fine.Len())
	}
	if coarse.Peak().Intensity != 100.0 {
		t.Errorf("peak intensity = %v, want exactly 100.0", coarse.Peak().Intensity)
	}
}

func TestSpectrumMemoized(t *testing.T) {
	f := mustParse(t, "H2O")
	first := f.Spectrum(0, 0)
	if second := f.Spectrum(0, 0); second != first {
		t.Error("repeated call should return the cached spectrum")
	}
	if other := f.Spectrum(0, 1.0); other == first {
		t.Error("different parameters should not share a cache entry")
	}
}

func TestSpectrumString(t *testing.T) {
	out := mustParse(t, "D2O").Spectrum(0, 0).String()
	if !strings.HasPrefix(out, "Relative mass    Fraction %      Intensity") {
		t.Errorf("spectrum table header missing:\n%s", out)
	}
	if !strings.Contains(out, "100.000000") {
		t.Errorf("spectrum table missing peak intensity:\n%s", out)
	}
}
