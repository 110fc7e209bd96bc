package formula

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    map[string]map[int]int
	}{
		{
			name:    "water",
			formula: "H2O",
			want:    map[string]map[int]int{"H": {0: 2}, "O": {0: 1}},
		},
		{
			name:    "heavy water",
			formula: "[2H]2O",
			want:    map[string]map[int]int{"H": {2: 2}, "O": {0: 1}},
		},
		{
			name:    "nested parentheses",
			formula: "AgCuRu4(H)2[CO]12{P(C6H5)3}2",
			want: map[string]map[int]int{
				"Ag": {0: 1}, "Cu": {0: 1}, "Ru": {0: 4}, "H": {0: 2 + 30},
				"C": {0: 12 + 36}, "O": {0: 12}, "P": {0: 2},
			},
		},
		{
			name:    "isotope at start of formula",
			formula: "13C",
			want:    map[string]map[int]int{"C": {13: 1}},
		},
		{
			name:    "unbracketed digits are a count",
			formula: "C13C",
			want:    map[string]map[int]int{"C": {0: 1 + 13}},
		},
		{
			name:    "bracketed isotope mid formula",
			formula: "[13C]Cl4",
			want:    map[string]map[int]int{"C": {13: 1}, "Cl": {0: 4}},
		},
		{
			name:    "mixed natural and isotopic",
			formula: "12CC",
			want:    map[string]map[int]int{"C": {0: 1, 12: 1}},
		},
		{
			name:    "count after group",
			formula: "(COOH)2",
			want:    map[string]map[int]int{"C": {0: 2}, "O": {0: 4}, "H": {0: 2}},
		},
		{
			name:    "charge suffix skipped",
			formula: "[SO4]2-",
			want:    map[string]map[int]int{"S": {0: 1}, "O": {0: 4}},
		},
		{
			name:    "all bracket families nest",
			formula: "<{[(H2O)2]2}2>2",
			want:    map[string]map[int]int{"H": {0: 32}, "O": {0: 16}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.formula)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.formula, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.formula, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		formula string
		message string
	}{
		{"", "empty formula"},
		{"()", "invalid formula"},
		{"2", "number preceding formula"},
		{"a", "unexpected character"},
		{"(a)", "unexpected character"},
		{"C:H", "unexpected character"},
		{"C[H", "missing closing parenthesis"},
		{"H)2", "missing opening parenthesis"},
		{"A", "unknown symbol"},
		{"Aa", "unknown symbol"},
		{"2lC", "unexpected character"},
		{"1C", "unknown isotope"},
		{"11CC", "unknown isotope"},
		{"H0", "count is zero"},
		{"(H)0", "count is zero"},
	}

	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			_, err := Parse(tt.formula)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.formula)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Parse(%q) error %q should contain %q", tt.formula, err.Error(), tt.message)
			}
		})
	}
}

func TestParseErrorRendering(t *testing.T) {
	_, err := Parse("H2SO4X2")
	if err == nil {
		t.Fatal("Parse should fail on unknown symbol")
	}
	ferr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if ferr.Position != 5 {
		t.Errorf("Position = %d, want 5", ferr.Position)
	}
	// message, formula, and a caret under the offending column
	want := "unknown symbol 'X'\nH2SO4X2\n.....^"
	if ferr.Error() != want {
		t.Errorf("Error() = %q, want %q", ferr.Error(), want)
	}
}

func TestParseAllowEmpty(t *testing.T) {
	cfg := Config{AllowEmpty: true}
	f, err := cfg.Parse("")
	if err != nil {
		t.Fatalf("empty formula with AllowEmpty: %v", err)
	}
	if f.Atoms() != 0 || f.Charge() != 0 || f.Mass() != 0 {
		t.Error("empty formula should have zero atoms, charge, and mass")
	}
	if f.Isotope().Abundance != 1.0 {
		t.Errorf("empty formula abundance = %v, want 1.0", f.Isotope().Abundance)
	}
	if f.Spectrum(0, 0).Len() != 0 {
		t.Error("empty formula spectrum should have no entries")
	}
}
