package formula

import "testing"

func TestFromPeptide(t *testing.T) {
	got, err := FromPeptide("GG")
	if err != nil {
		t.Fatal(err)
	}
	if got != "((C2H3NO)2H2O)" {
		t.Errorf("FromPeptide(GG) = %q", got)
	}
	// whitespace in the sequence is ignored
	spaced, err := FromPeptide("G G")
	if err != nil {
		t.Fatal(err)
	}
	if spaced != got {
		t.Error("spaces should not affect the result")
	}
	if _, err := FromPeptide("GJ"); err == nil {
		t.Error("invalid amino acid code should fail")
	}
}

func TestFromOligo(t *testing.T) {
	tests := []struct {
		sequence string
		kind     string
		want     string
	}{
		{"AC", "ssdna", "((C10H12N5O5P)(C9H12N3O6P)H2O)"},
		{"AT", "dsdna", "((C10H12N5O5P)2(C10H13N2O7P)2(H2O)2)"},
		{"AU", "dsrna", "((C10H12N5O6P)2(C9H11N2O8P)2(H2O)2)"},
	}
	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.sequence, func(t *testing.T) {
			got, err := FromOligo(tt.sequence, tt.kind)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FromOligo(%q, %q) = %q, want %q",
					tt.sequence, tt.kind, got, tt.want)
			}
		})
	}

	if _, err := FromOligo("AX", "dsdna"); err == nil {
		t.Error("invalid nucleotide code should fail")
	}
}

func TestFromSequence(t *testing.T) {
	got, err := FromSequence("GGA", AminoAcids)
	if err != nil {
		t.Fatal(err)
	}
	if got != "(C3H5NO)(C2H3NO)2" {
		t.Errorf("FromSequence = %q", got)
	}
}
