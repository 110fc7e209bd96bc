package formula

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// inputKind classifies a user input string once, before expansion.
type inputKind int

const (
	kindPlain inputKind = iota
	kindFractionList
	kindDNA
	kindRNA
	kindPeptide
)

// classify determines the shape of the (post group substitution) input.
// Precedence: mass-fraction list, then sequence alphabets, then plain
// formula text.
func classify(s string) inputKind {
	if strings.Contains(s, ":") && strings.Contains(s, ",") {
		return kindFractionList
	}
	if len(s) > 1 {
		if onlyChars(s, "ATCG") && anyChars(s, "ATG") {
			return kindDNA
		}
		if onlyChars(s, "AUCG") && anyChars(s, "AG") {
			return kindRNA
		}
		if onlyAminoAcids(s) && anyChars(s, "AEGMLQRT") {
			return kindPeptide
		}
	}
	return kindPlain
}

func onlyChars(s, set string) bool {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(set, rune(s[i])) {
			return false
		}
	}
	return true
}

func anyChars(s, set string) bool {
	return strings.ContainsAny(s, set)
}

func onlyAminoAcids(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := AminoAcids[s[i]]; !ok {
			return false
		}
	}
	return true
}

// preprocessors are explicit expansion functions recognized as
// name(...) calls anywhere in a plain formula string.
var preprocessors = []struct {
	name   string
	expand func(string) (string, error)
}{
	{"peptide", FromPeptide},
	{"ssdna", func(s string) (string, error) { return FromOligo(s, "ssdna") }},
	{"dsdna", func(s string) (string, error) { return FromOligo(s, "dsdna") }},
	{"ssrna", func(s string) (string, error) { return FromOligo(s, "ssrna") }},
	{"dsrna", func(s string) (string, error) { return FromOligo(s, "dsrna") }},
}

var (
	chargeDigitsRe = regexp.MustCompile(`([\]_]+)([0-9]+)([+-]+)$`)
	chargeSignsRe  = regexp.MustCompile(`([\]_]?)([+-]+)$`)
	preprocessorRe = map[string]*regexp.Regexp{}
)

func init() {
	for _, p := range preprocessors {
		preprocessorRe[p.name] = regexp.MustCompile(p.name + `\((.*?)\)`)
	}
}

// FromString rewrites a free-form user input string into a canonical
// formula string composed of element and isotope symbols, parentheses,
// counts, and an optional trailing charge suffix. A nil groups map
// selects the built-in Groups table.
func FromString(input string, groups map[string]string) (string, error) {
	f := strings.ReplaceAll(strings.TrimSpace(input), " ", "")

	// abbreviations of common chemical groups, longest key first
	if groups == nil {
		groups = Groups
	}
	if len(groups) > 0 {
		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		for _, key := range keys {
			if strings.Contains(f, key) {
				f = strings.ReplaceAll(f, key, "("+groups[key]+")")
			}
		}
	}

	switch classify(f) {
	case kindFractionList:
		fractions, err := parseFractionList(f)
		if err != nil {
			return "", err
		}
		return FromFractions(fractions)
	case kindDNA:
		return FromOligo(f, "ssdna")
	case kindRNA:
		return FromOligo(f, "ssrna")
	case kindPeptide:
		return FromPeptide(f)
	}

	// explicit preprocessor calls, e.g. peptide(GG) or dsdna(ATCG)
	if len(f) > 1 {
		for _, p := range preprocessors {
			re := preprocessorRe[p.name]
			for {
				m := re.FindStringSubmatch(f)
				if m == nil {
					break
				}
				expansion, err := p.expand(m[1])
				if err != nil {
					return "", err
				}
				f = strings.Replace(f, m[0], expansion, 1)
			}
		}
	}

	f = expandDeuterium(f)

	f, charge, err := splitCharge(f)
	if err != nil {
		return "", err
	}

	// hydrate dot is an alias for the addition operator
	f = strings.ReplaceAll(f, ".", "+")
	if strings.Contains(f, "+") {
		segments := strings.Split(f, "+")
		for i, seg := range segments {
			j := 0
			for j < len(seg) && seg[j] >= '0' && seg[j] <= '9' {
				j++
			}
			if j == 0 {
				continue
			}
			count := seg[:j]
			term := seg[j:]
			term = strings.TrimPrefix(term, "*")
			segments[i] = "(" + term + ")" + count
		}
		f = strings.Join(segments, "")
	}
	if i := strings.IndexByte(f, '-'); i >= 0 {
		return "", newError("subtraction not supported", f, i)
	}

	if charge != 0 {
		f = joinCharge(f, charge)
	}
	return f, nil
}

// parseFractionList parses a comma separated list of "symbol: fraction"
// pairs.
func parseFractionList(f string) (map[string]float64, error) {
	fractions := make(map[string]float64)
	for _, item := range strings.Split(f, ",") {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, newError("invalid list of mass fractions", f, -1)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, newError("invalid list of mass fractions", f, -1)
		}
		fractions[strings.TrimSpace(parts[0])] = value
	}
	return fractions, nil
}

// expandDeuterium replaces a bare D not followed by a lowercase letter
// with the 2H isotope. Two-letter symbols such as Dy stay untouched.
func expandDeuterium(f string) string {
	var sb strings.Builder
	for i := 0; i < len(f); i++ {
		if f[i] == 'D' && (i+1 == len(f) || f[i+1] < 'a' || f[i+1] > 'z') {
			sb.WriteString("[2H]")
		} else {
			sb.WriteByte(f[i])
		}
	}
	return sb.String()
}

// splitCharge extracts a trailing charge suffix and returns the
// remaining formula and the net charge. Supported suffixes are a run
// of +/- characters, each worth one elementary charge, or a
// magnitude-sign pair preceded by an underscore or a closing bracket.
func splitCharge(f string) (string, int, error) {
	charge := 0
	if m := chargeDigitsRe.FindStringSubmatch(f); m != nil {
		magnitude, err := strconv.Atoi(m[2])
		if err != nil || len(m[3]) != 1 {
			return "", 0, newError("invalid charge", f, len(f)-len(m[0]))
		}
		charge = magnitude
		if m[3] == "-" {
			charge = -charge
		}
		// truncate at the separator the regex matched, not at the
		// first occurrence: the body may itself contain brackets
		body := len(f) - len(m[0])
		switch {
		case strings.HasPrefix(m[1], "_"):
			f = f[:body]
		case strings.HasPrefix(m[1], "]"):
			f = f[:body+1]
		}
	} else if m := chargeSignsRe.FindStringSubmatch(f); m != nil {
		for _, c := range m[2] {
			if c == '+' {
				charge++
			} else {
				charge--
			}
		}
		body := len(f) - len(m[0])
		switch m[1] {
		case "_":
			f = f[:body]
		case "]":
			f = f[:body+1]
		default:
			f = strings.Trim(f, m[2])
		}
	}
	if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
		f = strings.TrimPrefix(f, "[")
		f = strings.TrimSuffix(f, "]")
	}
	return f, charge, nil
}

// joinCharge wraps a formula in brackets and appends the canonical
// charge suffix: bare sign for magnitude one, magnitude then sign
// otherwise.
func joinCharge(f string, charge int) string {
	sign := "+"
	if charge < 0 {
		sign = "-"
		charge = -charge
	}
	if charge > 1 {
		return fmt.Sprintf("[%s]%d%s", f, charge, sign)
	}
	return "[" + f + "]" + sign
}
