package formulas

import (
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	input := strings.Join([]string{
		"# common solvents",
		"H2O",
		"",
		"  C2H6O  # ethanol",
		"CHCl3",
		"",
	}, "\n")

	r := NewReader(strings.NewReader(input))

	var got []Entry
	for r.Next() {
		got = append(got, r.Entry())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	want := []Entry{
		{Formula: "H2O", Line: 2},
		{Formula: "C2H6O", Line: 4},
		{Formula: "CHCl3", Line: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("read %d entries, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReaderEmpty(t *testing.T) {
	r := NewReader(strings.NewReader("# nothing but comments\n\n"))
	if r.Next() {
		t.Error("Next() should return false for comment-only input")
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
