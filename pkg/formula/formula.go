// Package formula parses chemical formula strings and computes
// molecular masses, elemental composition, and isotope mass
// distribution spectra.
//
// Input strings may contain element and isotope symbols, parentheses,
// counts, group abbreviations (EtOH), hydrate dots (CuSO4.5H2O),
// peptide and nucleotide sequences, mass-fraction lists, and trailing
// ion charges. Calculations are based on the isotopic composition of
// the elements; mass deficiency due to chemical bonding is not taken
// into account.
package formula

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
)

// Config controls formula construction.
type Config struct {
	// Groups maps additional abbreviations to their expansions.
	// Nil selects the built-in Groups table.
	Groups map[string]string
	// AllowEmpty permits the empty formula instead of failing.
	AllowEmpty bool
}

// Isotope is the isotopic composition of a molecule built from each
// element's single most abundant (or explicitly selected) isotope.
type Isotope struct {
	Mass       float64 // monoisotopic mass
	Abundance  float64 // product of per-atom abundances
	MassNumber int     // nominal mass
	Charge     int
}

func (iso Isotope) String() string {
	return fmt.Sprintf("%d, %.4f, %.6f%%", iso.MassNumber, iso.Mass, iso.Abundance*100)
}

// Formula is a parsed chemical formula. Values are immutable after
// construction; arithmetic produces new values. Derived properties are
// computed once and cached. First access mutates the cache, so a
// Formula must not be shared across goroutines without external
// synchronization or pre-warming.
type Formula struct {
	formula string
	elems   map[string]map[int]int
	charge  int

	hill      string
	empirical string
	gcdValue  int
	mass      float64
	massDone  bool
	isotope   Isotope
	isoDone   bool

	compositions [2]Composition
	compDone     [2]bool
	spectra      map[spectrumKey]*Spectrum
}

var chargeSuffixRe = regexp.MustCompile(`\]+([0-9]*)([+-]+)$`)

// New parses a formula string with the default configuration.
func New(input string) (*Formula, error) {
	return (&Config{}).Parse(input)
}

// Parse normalizes and parses a formula string.
func (c *Config) Parse(input string) (*Formula, error) {
	canonical, err := FromString(input, c.Groups)
	if err != nil {
		return nil, err
	}
	elems, err := parseElements(canonical, c.AllowEmpty)
	if err != nil {
		return nil, err
	}
	f := &Formula{
		formula: canonical,
		elems:   elems,
		charge:  chargeOf(canonical),
	}
	return f, nil
}

// chargeOf extracts the net charge from a canonical charge suffix,
// e.g. "[SO4]2-" yields -2.
func chargeOf(canonical string) int {
	m := chargeSuffixRe.FindStringSubmatch(canonical)
	if m == nil {
		return 0
	}
	charge := 1
	if m[1] != "" {
		charge = 0
		for _, c := range m[1] {
			charge = charge*10 + int(c-'0')
		}
	}
	if m[2][len(m[2])-1] == '-' {
		charge = -charge
	}
	return charge
}

// String returns the canonical formula string.
func (f *Formula) String() string {
	return f.formula
}

// Charge returns the ion charge in elementary charge units.
func (f *Formula) Charge() int {
	return f.charge
}

// Hill returns the formula rendered in Hill notation: carbon first,
// then hydrogen if carbon is present, remaining symbols alphabetical.
func (f *Formula) Hill() string {
	if f.hill == "" && len(f.elems) > 0 {
		f.hill = FromElements(f.elems, 1)
	}
	return f.hill
}

// Empirical returns the formula with all counts divided by their
// greatest common divisor, in Hill notation.
func (f *Formula) Empirical() string {
	if f.empirical == "" && len(f.elems) > 0 {
		f.empirical = FromElements(f.elems, f.GCD())
	}
	return f.empirical
}

// Atoms returns the total number of atoms.
func (f *Formula) Atoms() int {
	n := 0
	for _, isotopes := range f.elems {
		for _, count := range isotopes {
			n += count
		}
	}
	return n
}

// GCD returns the greatest common divisor of all atom counts.
func (f *Formula) GCD() int {
	if f.gcdValue == 0 {
		g := 0
		for _, isotopes := range f.elems {
			for _, count := range isotopes {
				g = gcd(g, count)
			}
		}
		if g == 0 {
			g = 1
		}
		f.gcdValue = g
	}
	return f.gcdValue
}

// Mass returns the average relative molecular mass: the sum of the
// standard atomic weights (or isotopic masses for explicit isotopes)
// of all atoms, corrected for the electrons gained or lost by the ion
// charge. For a neutral molecule this equals the molar mass in g/mol.
func (f *Formula) Mass() float64 {
	if !f.massDone {
		mass := 0.0
		for _, symbol := range f.sortedSymbols() {
			ele, _ := elements.Lookup(symbol)
			isotopes := f.elems[symbol]
			for _, massnumber := range sortedMassNumbers(isotopes) {
				count := isotopes[massnumber]
				if massnumber != 0 {
					iso, _ := ele.Isotope(massnumber)
					mass += iso.Mass * float64(count)
				} else {
					mass += ele.Mass * float64(count)
				}
			}
		}
		f.mass = mass - elements.Electron.Mass*float64(f.charge)
		f.massDone = true
	}
	return f.mass
}

// Isotope returns the composite isotope built from each element's
// explicit or most abundant isotope. Its abundance is the product of
// the per-atom abundances; its mass includes the electron correction
// for the ion charge.
func (f *Formula) Isotope() Isotope {
	if !f.isoDone {
		result := Isotope{Abundance: 1.0, Charge: f.charge}
		for _, symbol := range f.sortedSymbols() {
			ele, _ := elements.Lookup(symbol)
			isotopes := f.elems[symbol]
			for _, massnumber := range sortedMassNumbers(isotopes) {
				count := isotopes[massnumber]
				var iso elements.Isotope
				if massnumber != 0 {
					iso, _ = ele.Isotope(massnumber)
				} else {
					iso = ele.MostAbundant()
				}
				result.Mass += iso.Mass * float64(count)
				result.MassNumber += iso.MassNumber * count
				for i := 0; i < count; i++ {
					result.Abundance *= iso.Abundance
				}
			}
		}
		result.Mass -= elements.Electron.Mass * float64(f.charge)
		f.isotope = result
		f.isoDone = true
	}
	return f.isotope
}

// MonoisotopicMass returns the mass of the molecule composed entirely
// of each element's most abundant isotope.
func (f *Formula) MonoisotopicMass() float64 {
	return f.Isotope().Mass
}

// NominalMass returns the integer mass number of the monoisotopic
// molecule.
func (f *Formula) NominalMass() int {
	return f.Isotope().MassNumber
}

// MZ returns the mass to charge ratio, or the mass for a neutral
// molecule.
func (f *Formula) MZ() float64 {
	if f.charge != 0 {
		return f.Mass() / float64(abs(f.charge))
	}
	return f.Mass()
}

// Elements returns a copy of the element map: atom counts by element
// symbol and isotope mass number (zero for the natural distribution).
func (f *Formula) Elements() map[string]map[int]int {
	return copyElements(f.elems)
}

// Mul returns this formula repeated n times as a new Formula. The
// result is neutral; any charge on f is not carried over.
func (f *Formula) Mul(n int) (*Formula, error) {
	if n < 1 {
		return nil, fmt.Errorf("can only multiply with positive number")
	}
	return New(fmt.Sprintf("(%s)%d", f.formula, n))
}

// Add combines the elements of both formulas; charges add.
func (f *Formula) Add(other *Formula) (*Formula, error) {
	charge := f.charge + other.charge
	combined := fmt.Sprintf("(%s)(%s)", f.Hill(), other.Hill())
	if charge != 0 {
		combined = joinCharge(combined, charge)
	}
	return New(combined)
}

// Sub removes the elements of the other formula and returns the
// difference as a new, neutral Formula. Removing an element or isotope
// that is not present, or more atoms than present, is an error;
// exactly canceled terms are dropped, and canceling every term yields
// an empty Formula with no atoms.
func (f *Formula) Sub(other *Formula) (*Formula, error) {
	elems := copyElements(f.elems)
	for symbol, isotopes := range other.elems {
		remaining, ok := elems[symbol]
		if !ok {
			return nil, fmt.Errorf("element %s not in %s", symbol, f.formula)
		}
		for massnumber, count := range isotopes {
			have, ok := remaining[massnumber]
			if !ok {
				return nil, fmt.Errorf("element %d%s not in %s", massnumber, symbol, f.formula)
			}
			switch {
			case have < count:
				return nil, fmt.Errorf("negative number of element %d%s", massnumber, symbol)
			case have == count:
				delete(remaining, massnumber)
			default:
				remaining[massnumber] = have - count
			}
		}
		if len(remaining) == 0 {
			delete(elems, symbol)
		}
	}
	return (&Config{AllowEmpty: true}).Parse(FromElements(elems, 1))
}

func copyElements(elems map[string]map[int]int) map[string]map[int]int {
	dup := make(map[string]map[int]int, len(elems))
	for symbol, isotopes := range elems {
		m := make(map[int]int, len(isotopes))
		for massnumber, count := range isotopes {
			m[massnumber] = count
		}
		dup[symbol] = m
	}
	return dup
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// sortedSymbols returns the element symbols in Hill order for
// deterministic iteration.
func (f *Formula) sortedSymbols() []string {
	symbols := make([]string, 0, len(f.elems))
	for symbol := range f.elems {
		symbols = append(symbols, symbol)
	}
	return HillSorted(symbols)
}

// sortedMassNumbers returns the isotope selectors of a symbol in
// ascending order.
func sortedMassNumbers(isotopes map[int]int) []int {
	massnumbers := make([]int, 0, len(isotopes))
	for massnumber := range isotopes {
		massnumbers = append(massnumbers, massnumber)
	}
	sort.Ints(massnumbers)
	return massnumbers
}
