package formula

import (
	"fmt"
	"sort"
	"strings"
)

// FromSequence tallies sequence characters and returns a formula
// fragment with one parenthesized term per distinct character, sorted
// by character, e.g. "AAB" with {A: X, B: Y} yields "(X)2(Y)".
func FromSequence(sequence string, items map[byte]string) (string, error) {
	counts := make(map[byte]int, len(items))
	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		if _, ok := items[c]; !ok {
			return "", newError(fmt.Sprintf("invalid sequence character '%c'", c), sequence, i)
		}
		counts[c]++
	}
	keys := make([]byte, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sb strings.Builder
	for _, key := range keys {
		switch num := counts[key]; {
		case num == 1:
			fmt.Fprintf(&sb, "(%s)", items[key])
		case num > 1:
			fmt.Fprintf(&sb, "(%s)%d", items[key], num)
		}
	}
	return sb.String(), nil
}

// FromPeptide returns the formula for a polymer of unmodified amino
// acids given as one-letter codes, including the condensation water.
func FromPeptide(sequence string) (string, error) {
	sequence = strings.ReplaceAll(sequence, " ", "")
	s, err := FromSequence(sequence, AminoAcids)
	if err != nil {
		return "", err
	}
	return "(" + s + "H2O)", nil
}

// FromOligo returns the formula for a polymer of unmodified
// (deoxy)nucleotides. Kind is "ssdna", "dsdna", "ssrna", or "dsrna".
// Each strand includes a 5' monophosphate and one water.
func FromOligo(sequence, kind string) (string, error) {
	kind = strings.ToLower(kind)
	sequence = strings.ReplaceAll(sequence, " ", "")

	items := Deoxynucleotides
	complements := dnaComplements
	if strings.Contains(kind, "rna") {
		items = Nucleotides
		complements = rnaComplements
	}

	if strings.HasPrefix(kind, "ds") {
		var sb strings.Builder
		sb.WriteString(sequence)
		for i := 0; i < len(sequence); i++ {
			c, ok := complements[sequence[i]]
			if !ok {
				return "", newError(fmt.Sprintf("invalid sequence character '%c'", sequence[i]), sequence, i)
			}
			sb.WriteByte(c)
		}
		s, err := FromSequence(sb.String(), items)
		if err != nil {
			return "", err
		}
		return "(" + s + "(H2O)2)", nil
	}

	s, err := FromSequence(sequence, items)
	if err != nil {
		return "", err
	}
	return "(" + s + "H2O)", nil
}
