package formula

import (
	"fmt"
	"strings"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
)

// ElectronSymbol labels the pseudo entry for the electrons gained or
// lost by an ion in a composition listing.
const ElectronSymbol = "e-"

// CompositionItem is one line of an elemental composition breakdown.
type CompositionItem struct {
	Symbol   string
	Count    int
	Mass     float64 // absolute mass contributed by this entry
	Fraction float64 // Mass relative to the total molecular mass
}

// Composition is a read-only elemental composition breakdown ordered
// by Hill notation, with isotopes of an element in ascending mass
// number order. Charged formulas carry a trailing pseudo entry for the
// electron excess or deficit, so fractions always sum to one.
type Composition []CompositionItem

// Total returns the sums of counts, masses, and fractions.
func (c Composition) Total() (count int, mass, fraction float64) {
	for _, item := range c {
		count += item.Count
		mass += item.Mass
		fraction += item.Fraction
	}
	return count, mass, fraction
}

// String renders the composition as a plain text table.
func (c Composition) String() string {
	if len(c) == 0 {
		return ""
	}
	_, total, _ := c.Total()
	prec := PrecisionDigits(total, 9)
	lines := []string{"Element  Number  Relative mass  Fraction %"}
	for _, item := range c {
		lines = append(lines, fmt.Sprintf("%-6s %8d  %13.*f %11.4f",
			item.Symbol, item.Count, prec, item.Mass, item.Fraction*100))
	}
	if len(c) > 1 {
		count, mass, fraction := c.Total()
		lines = append(lines, fmt.Sprintf("%-6s %8d  %13.*f %11.4f",
			"Total:", count, prec, mass, fraction*100))
	}
	return strings.Join(lines, "\n")
}

// Composition returns the per-element breakdown of count, mass, and
// mass fraction. If isotopic is true, isotopes named in the formula
// are listed separately from the element's natural-abundance atoms.
// The result is computed on first access and cached.
func (f *Formula) Composition(isotopic bool) Composition {
	slot := 0
	if isotopic {
		slot = 1
	}
	if f.compDone[slot] {
		return f.compositions[slot]
	}

	var result Composition
	totalMass := f.Mass()
	for _, symbol := range f.sortedSymbols() {
		ele, _ := elements.Lookup(symbol)
		isotopes := f.elems[symbol]
		if isotopic {
			for _, massnumber := range sortedMassNumbers(isotopes) {
				count := isotopes[massnumber]
				label := symbol
				var mass float64
				if massnumber != 0 {
					iso, _ := ele.Isotope(massnumber)
					mass = iso.Mass * float64(count)
					label = fmt.Sprintf("%d%s", massnumber, symbol)
				} else {
					mass = ele.Mass * float64(count)
				}
				result = append(result, CompositionItem{
					Symbol:   label,
					Count:    count,
					Mass:     mass,
					Fraction: fraction(mass, totalMass),
				})
			}
		} else {
			mass := 0.0
			count := 0
			for _, massnumber := range sortedMassNumbers(isotopes) {
				n := isotopes[massnumber]
				count += n
				if massnumber != 0 {
					iso, _ := ele.Isotope(massnumber)
					mass += iso.Mass * float64(n)
				} else {
					mass += ele.Mass * float64(n)
				}
			}
			result = append(result, CompositionItem{
				Symbol:   symbol,
				Count:    count,
				Mass:     mass,
				Fraction: fraction(mass, totalMass),
			})
		}
	}

	if f.charge != 0 && len(result) > 0 {
		mass := -elements.Electron.Mass * float64(f.charge)
		result = append(result, CompositionItem{
			Symbol:   ElectronSymbol,
			Count:    -f.charge,
			Mass:     mass,
			Fraction: fraction(mass, totalMass),
		})
	}

	f.compositions[slot] = result
	f.compDone[slot] = true
	return result
}

func fraction(mass, total float64) float64 {
	if total == 0 {
		return 0
	}
	return mass / total
}
