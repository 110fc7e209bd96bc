package formula

import (
	"strings"
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain formula", "H2O", "H2O"},
		{"group abbreviation", "Valohp", "(C5H8NO2)"},
		{"group with count", "HLeu2OH", "H(C6H11NO)2OH"},
		{"phenyl group", "PhNH2.HCl", "(C6H5)NH2HCl"},
		{"deuterium", "D2O", "[2H]2O"},
		{"deuterium before uppercase", "DHO", "[2H]HO"},
		{"dysprosium untouched", "Dy2O3", "Dy2O3"},
		{"mass fractions", "O: 0.26, 30Si: 0.74", "O2[30Si]3"},
		{"hydrate dot", "CuSO4.5H2O", "CuSO4(H2O)5"},
		{"explicit arithmetic", "CuSO4+5*H2O", "CuSO4(H2O)5"},
		{"ssdna preprocessor", "ssdna(AC)", "((C10H12N5O5P)(C9H12N3O6P)H2O)"},
		{"peptide preprocessor", "peptide(GG)", "((C2H3NO)2H2O)"},
		{"dna sequence", "ATCG", "((C10H12N5O5P)(C9H12N3O6P)(C10H12N5O6P)(C10H13N2O7P)H2O)"},
		{"charge as trailing plus", "C8H14Br4+H+", "[C8H14Br4H]+"},
		{"canceling signs", "C8H14Br4+-", "C8H14Br4"},
		{"underscore minus", "C14H17N2O_-", "[C14H17N2O]-"},
		{"double plus", "C56H75I4N13O2Pt2++", "[C56H75I4N13O2Pt2]2+"},
		{"underscore magnitude", "C56H75I4N13O2Pt2_2+", "[C56H75I4N13O2Pt2]2+"},
		{"sulfate dianion", "SO4_2-", "[SO4]2-"},
		{"bracketed cation", "[C53H100NO6]+", "[C53H100NO6]+"},
		{"whitespace stripped", " C H 4 ", "CH4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input, nil)
			if err != nil {
				t.Fatalf("FromString(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("FromString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromStringSequences(t *testing.T) {
	// peptide detected from the bare amino acid alphabet
	got, err := FromString("MDRGEQGLLK", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, "H2O)") || !strings.HasPrefix(got, "(") {
		t.Errorf("peptide expansion %q should be wrapped with condensation water", got)
	}

	// RNA alphabet
	got, err = FromString("AUCG", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "C9H11N2O8P") {
		t.Errorf("RNA expansion %q should contain the uridine monophosphate residue", got)
	}

	// double stranded DNA includes the complement strand, two waters
	got, err = FromString("dsdna(AT)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "((C10H12N5O5P)2(C10H13N2O7P)2(H2O)2)" {
		t.Errorf("dsdna(AT) = %q", got)
	}
}

func TestFromStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"subtraction", "H2O-H", "subtraction not supported"},
		{"bad fraction list", "H: x, O: 0.5", "invalid list of mass fractions"},
		{"unknown fraction element", "Ox: 0.26, 30Si: 0.74", "unknown element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromString(tt.input, nil)
			if err == nil {
				t.Fatalf("FromString(%q) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestCustomGroups(t *testing.T) {
	groups := map[string]string{"EtOH": "C2H6O"}
	got, err := FromString("EtOH", groups)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(C2H6O)" {
		t.Errorf("FromString with custom groups = %q, want %q", got, "(C2H6O)")
	}
}

func TestLoadGroups(t *testing.T) {
	doc := "EtOAc: C4H8O2\nAc: C2H3O\n"
	groups, err := LoadGroups(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadGroups() error: %v", err)
	}
	if groups["EtOAc"] != "C4H8O2" {
		t.Errorf("EtOAc = %q, want C4H8O2", groups["EtOAc"])
	}
	// built-ins are preserved
	if groups["Ph"] != "C6H5" {
		t.Errorf("built-in Ph = %q, want C6H5", groups["Ph"])
	}

	if _, err := LoadGroups(strings.NewReader("not: [valid")); err == nil {
		t.Error("LoadGroups should fail on malformed YAML")
	}
}
