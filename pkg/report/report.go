// Package report renders plain text analyses of chemical formulas.
// It is a presentation layer over pkg/formula; formatting here never
// changes core semantics.
package report

import (
	"fmt"
	"strings"

	"github.com/ChrisMcGann/MolMass/pkg/formula"
)

// DefaultMaxAtoms is the atom count above which the mass distribution
// spectrum is skipped. Convolution cost grows quickly with the number
// of atoms.
const DefaultMaxAtoms = 250

// Options control report generation.
type Options struct {
	MaxAtoms     int               // 0 selects DefaultMaxAtoms
	MinFraction  float64           // spectrum pruning threshold, 0 selects the default
	MinIntensity float64           // drop spectrum bins below this intensity
	Groups       map[string]string // custom group abbreviations
}

// Analyze returns a plain text analysis of a formula string using
// default options.
func Analyze(input string) string {
	return AnalyzeWithOptions(input, Options{})
}

// AnalyzeWithOptions returns a plain text analysis of a formula
// string: normalized and Hill notation, masses, elemental
// composition, and mass distribution. Errors from parsing or analysis
// are rendered as an "Error: ..." line instead of propagating; this is
// the only place errors are swallowed.
func AnalyzeWithOptions(input string, opts Options) string {
	maxAtoms := opts.MaxAtoms
	if maxAtoms == 0 {
		maxAtoms = DefaultMaxAtoms
	}

	cfg := formula.Config{Groups: opts.Groups}
	f, err := cfg.Parse(input)
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}

	var lines []string
	if len(f.String()) <= 50 {
		lines = append(lines, fmt.Sprintf("Formula: %s", f))
	}
	if input != f.Hill() {
		lines = append(lines, fmt.Sprintf("Hill notation: %s", f.Hill()))
	}
	if f.Hill() != f.Empirical() {
		lines = append(lines, fmt.Sprintf("Empirical formula: %s", f.Empirical()))
	}

	iso := f.Isotope()
	prec := formula.PrecisionDigits(f.Mass(), 9)
	if f.Mass() != iso.Mass {
		lines = append(lines, fmt.Sprintf("\nAverage mass: %.*f", prec, f.Mass()))
	}
	lines = append(lines,
		fmt.Sprintf("Monoisotopic mass: %.*f", prec, iso.Mass),
		fmt.Sprintf("Nominal mass: %d", iso.MassNumber))
	if f.Charge() != 0 {
		lines = append(lines,
			fmt.Sprintf("Charge: %+d", f.Charge()),
			fmt.Sprintf("Mass/charge: %.*f", prec, f.MZ()))
	}

	if c := f.Composition(true); len(c) > 1 {
		lines = append(lines, "\nElemental Composition\n", c.String())
	}

	if f.Atoms() < maxAtoms {
		if s := f.Spectrum(opts.MinFraction, opts.MinIntensity); s.Len() > 1 {
			peak := s.Peak()
			lines = append(lines,
				"\nMass Distribution",
				fmt.Sprintf("\nMost abundant mass: %.*f (%.3f%%)",
					prec, peak.Mass, peak.Fraction*100),
				fmt.Sprintf("Mean mass: %.*f\n", prec, s.Mean()),
				s.String())
		}
	}

	return strings.Join(lines, "\n")
}
