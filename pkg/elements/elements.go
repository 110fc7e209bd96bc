// Package elements provides the periodic table data used for molecular
// mass calculations: elements, their natural isotopes, and reference
// particles. The table is read-only and initialized at package load.
package elements

import "fmt"

// Isotope is a single nuclide of an element.
type Isotope struct {
	Mass       float64 // relative atomic mass
	Abundance  float64 // natural abundance in [0,1]
	MassNumber int     // protons + neutrons
}

func (iso Isotope) String() string {
	return fmt.Sprintf("%.4f, %.4f%%, %d", iso.Mass, iso.Abundance*100, iso.MassNumber)
}

// Element is one entry of the periodic table.
type Element struct {
	Number   int     // atomic number (proton count)
	Symbol   string  // one or two letter symbol
	Name     string  // English name
	Mass     float64 // standard atomic weight
	Isotopes []Isotope

	nominal int // cached by NominalMass
}

func (e *Element) String() string {
	return e.Name
}

// Isotope returns the isotope with the given mass number.
func (e *Element) Isotope(massnumber int) (Isotope, bool) {
	for _, iso := range e.Isotopes {
		if iso.MassNumber == massnumber {
			return iso, true
		}
	}
	return Isotope{}, false
}

// NominalMass returns the mass number of the most abundant natural
// isotope. The result is computed on first use and cached; Element
// values are otherwise immutable.
func (e *Element) NominalMass() int {
	if e.nominal == 0 {
		abundance := -1.0
		for _, iso := range e.Isotopes {
			if iso.Abundance > abundance {
				abundance = iso.Abundance
				e.nominal = iso.MassNumber
			}
		}
	}
	return e.nominal
}

// MostAbundant returns the most abundant natural isotope.
func (e *Element) MostAbundant() Isotope {
	iso, _ := e.Isotope(e.NominalMass())
	return iso
}

// Validate checks the element's isotope table invariants.
func (e *Element) Validate() error {
	if e.Number < 1 {
		return fmt.Errorf("%s: invalid atomic number %d", e.Symbol, e.Number)
	}
	if len(e.Isotopes) == 0 {
		return fmt.Errorf("%s: no isotopes", e.Symbol)
	}
	sum := 0.0
	for _, iso := range e.Isotopes {
		if iso.Mass <= 0 {
			return fmt.Errorf("%s: isotope %d has non-positive mass", e.Symbol, iso.MassNumber)
		}
		if iso.Abundance < 0 || iso.Abundance > 1 {
			return fmt.Errorf("%s: isotope %d abundance out of range", e.Symbol, iso.MassNumber)
		}
		sum += iso.Abundance
	}
	if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("%s: isotope abundances sum to %.12f", e.Symbol, sum)
	}
	return nil
}

// Particle is a subatomic particle, e.g. electron, proton, or neutron.
type Particle struct {
	Name   string
	Mass   float64 // relative mass (u)
	Charge float64 // electric charge in coulomb
}

// ElementaryCharge is the electric charge of a proton in coulomb.
const ElementaryCharge = 1.602176634e-19

var (
	Electron = Particle{"Electron", 5.48579909065e-4, -ElementaryCharge}
	Proton   = Particle{"Proton", 1.007276466621, ElementaryCharge}
	Neutron  = Particle{"Neutron", 1.00866491595, 0.0}
)

var (
	bySymbol = make(map[string]*Element, len(table))
	byNumber = make(map[int]*Element, len(table))
)

func init() {
	for _, e := range table {
		bySymbol[e.Symbol] = e
		byNumber[e.Number] = e
	}
}

// Lookup returns the element with the given symbol.
func Lookup(symbol string) (*Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}

// ByNumber returns the element with the given atomic number.
func ByNumber(number int) (*Element, bool) {
	e, ok := byNumber[number]
	return e, ok
}

// Count returns the number of elements in the table.
func Count() int {
	return len(table)
}

// All returns the elements ordered by atomic number.
func All() []*Element {
	return table
}
