package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// HillSorted returns element symbols in Hill notation order: carbon
// first, then hydrogen if carbon is present, then the remaining
// symbols alphabetically.
func HillSorted(symbols []string) []string {
	rest := make([]string, 0, len(symbols))
	hasC := false
	hasH := false
	for _, s := range symbols {
		switch s {
		case "C":
			hasC = true
		case "H":
			hasH = true
		default:
			rest = append(rest, s)
		}
	}
	sort.Strings(rest)
	result := make([]string, 0, len(symbols))
	if hasC {
		result = append(result, "C")
		if hasH {
			result = append(result, "H")
		}
	} else if hasH {
		rest = append(rest, "H")
		sort.Strings(rest)
	}
	return append(result, rest...)
}

// FromElements renders an element map as a formula string in Hill
// notation, dividing all counts by divisor.
func FromElements(elems map[string]map[int]int, divisor int) string {
	symbols := make([]string, 0, len(elems))
	for symbol := range elems {
		symbols = append(symbols, symbol)
	}

	var sb strings.Builder
	for _, symbol := range HillSorted(symbols) {
		isotopes := elems[symbol]
		massnumbers := make([]int, 0, len(isotopes))
		for massnumber := range isotopes {
			massnumbers = append(massnumbers, massnumber)
		}
		sort.Ints(massnumbers)
		for _, massnumber := range massnumbers {
			count := isotopes[massnumber] / divisor
			switch {
			case massnumber != 0 && count == 1:
				fmt.Fprintf(&sb, "[%d%s]", massnumber, symbol)
			case massnumber != 0:
				fmt.Fprintf(&sb, "[%d%s]%d", massnumber, symbol, count)
			case count == 1:
				sb.WriteString(symbol)
			default:
				fmt.Fprintf(&sb, "%s%d", symbol, count)
			}
		}
	}
	return sb.String()
}

// gcd returns the greatest common divisor of two integers using
// Euclid's algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// PrecisionDigits returns the number of digits after the decimal point
// needed to print f in width characters.
func PrecisionDigits(f float64, width int) int {
	if f == 0 {
		return 1
	}
	precision := math.Log10(math.Abs(f))
	if precision < 0 {
		precision = 0
	}
	digits := width - int(math.Floor(precision))
	if f < 0 {
		digits -= 3
	} else {
		digits -= 2
	}
	if digits < 1 {
		digits = 1
	}
	return digits
}
