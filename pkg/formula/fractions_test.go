package formula

import "testing"

func TestFromFractions(t *testing.T) {
	tests := []struct {
		name      string
		fractions map[string]float64
		want      string
	}{
		{
			name:      "water",
			fractions: map[string]float64{"H": 0.112, "O": 0.888},
			want:      "H2O",
		},
		{
			name:      "heavy water",
			fractions: map[string]float64{"D": 0.2, "O": 0.8},
			want:      "O[2H]2",
		},
		{
			name:      "isotope selector",
			fractions: map[string]float64{"O": 0.26, "30Si": 0.74},
			want:      "O2[30Si]3",
		},
		{
			name:      "bracketed isotope selector",
			fractions: map[string]float64{"O": 0.26, "[30Si]": 0.74},
			want:      "O2[30Si]3",
		},
		{
			name:      "unnormalized weights",
			fractions: map[string]float64{"H": 112.0, "O": 888.0},
			want:      "H2O",
		},
		{
			name:      "organic",
			fractions: map[string]float64{"H": 8.97, "C": 59.39, "O": 31.64},
			want:      "C5H9O2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromFractions(tt.fractions)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FromFractions(%v) = %q, want %q", tt.fractions, got, tt.want)
			}
		})
	}
}

func TestFromFractionsErrors(t *testing.T) {
	tests := []struct {
		name      string
		fractions map[string]float64
	}{
		{"unknown element", map[string]float64{"Ox": 1.0}},
		{"unknown isotope", map[string]float64{"99O": 1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFractions(tt.fractions); err == nil {
				t.Errorf("FromFractions(%v) should fail", tt.fractions)
			}
		})
	}
}

func TestFromFractionsEmpty(t *testing.T) {
	got, err := FromFractions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("FromFractions(nil) = %q, want empty string", got)
	}
}
