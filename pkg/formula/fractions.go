package formula

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
)

const (
	fractionMaxCount  = 10   // largest integer scale factor tried
	fractionPrecision = 1e-4 // acceptable rounding error per symbol
)

// FromFractions infers a formula string from elemental mass fractions.
// Fractions are normalized to sum 1, converted to relative mole counts,
// and scaled by the smallest integer factor that makes all counts
// near-integral. Keys are element symbols, isotope selectors such as
// "30Si" or "[30Si]", or "D" for deuterium.
func FromFractions(fractions map[string]float64) (string, error) {
	if len(fractions) == 0 {
		return "", nil
	}

	sum := 0.0
	for _, fraction := range fractions {
		sum += fraction
	}

	// divide normalized fractions by element/isotope mass
	numbers := make(map[string]float64, len(fractions))
	for symbol, fraction := range fractions {
		if symbol == "D" {
			symbol = "2H"
		}
		var mass float64
		if symbol[0] >= 'A' && symbol[0] <= 'Z' {
			ele, ok := elements.Lookup(symbol)
			if !ok {
				return "", newError(fmt.Sprintf("unknown element '%s'", symbol), "", -1)
			}
			mass = ele.Mass
		} else {
			s := symbol
			if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
				s = s[1 : len(s)-1]
			}
			i := 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			if i == 0 || i == len(s) {
				return "", newError(fmt.Sprintf("unknown isotope '%s'", symbol), "", -1)
			}
			massnum := 0
			for _, c := range s[:i] {
				massnum = massnum*10 + int(c-'0')
			}
			ele, ok := elements.Lookup(s[i:])
			if !ok {
				return "", newError(fmt.Sprintf("unknown isotope '[%d%s]'", massnum, s[i:]), "", -1)
			}
			iso, ok := ele.Isotope(massnum)
			if !ok {
				return "", newError(fmt.Sprintf("unknown isotope '[%d%s]'", massnum, s[i:]), "", -1)
			}
			mass = iso.Mass
			symbol = fmt.Sprintf("[%d%s]", massnum, s[i:])
		}
		numbers[symbol] = fraction / (sum * mass)
	}

	// divide numbers by the smallest number
	smallest := math.Inf(1)
	for _, n := range numbers {
		if n < smallest {
			smallest = n
		}
	}
	for symbol := range numbers {
		numbers[symbol] /= smallest
	}

	// find the smallest factor that turns all numbers into integers
	precision := fractionPrecision * float64(len(numbers))
	best := 1e6
	factor := 1
	for i := 1; i < fractionMaxCount; i++ {
		x := 0.0
		for _, n := range numbers {
			scaled := float64(i) * n
			x += math.Abs(scaled - math.Round(scaled))
		}
		if x < best {
			best = x
			factor = i
			if best < float64(i)*precision {
				break
			}
		}
	}

	symbols := make([]string, 0, len(numbers))
	for symbol := range numbers {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var sb strings.Builder
	for _, symbol := range symbols {
		count := int(math.Round(float64(factor) * numbers[symbol]))
		if count > 1 {
			fmt.Fprintf(&sb, "%s%d", symbol, count)
		} else {
			sb.WriteString(symbol)
		}
	}
	return sb.String(), nil
}
