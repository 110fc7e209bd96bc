package formula

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
)

// DefaultMinFraction is the per-bin probability mass below which
// spectrum bins are pruned during convolution.
const DefaultMinFraction = 1e-9

// SpectrumEntry is one mass-number bin of a mass distribution.
type SpectrumEntry struct {
	MassNumber int
	Mass       float64 // abundance-weighted mean mass of the bin
	Fraction   float64 // probability mass in [0,1]
	Intensity  float64 // Fraction relative to the strongest bin, max 100
	MZ         float64 // Mass divided by the charge magnitude
}

// Spectrum is a low resolution mass distribution with entries ordered
// by ascending mass number.
type Spectrum struct {
	Entries []SpectrumEntry
}

// Len returns the number of bins.
func (s *Spectrum) Len() int {
	return len(s.Entries)
}

// Range returns the smallest and largest mass number.
func (s *Spectrum) Range() (int, int) {
	if len(s.Entries) == 0 {
		return 0, 0
	}
	return s.Entries[0].MassNumber, s.Entries[len(s.Entries)-1].MassNumber
}

// Peak returns the most abundant entry. Ties go to the lowest mass
// number.
func (s *Spectrum) Peak() SpectrumEntry {
	var peak SpectrumEntry
	for _, entry := range s.Entries {
		if entry.Fraction > peak.Fraction {
			peak = entry
		}
	}
	return peak
}

// Mean returns the fraction-weighted mean mass over all retained bins.
// The result is not renormalized for mass pruned during convolution.
func (s *Spectrum) Mean() float64 {
	mean := 0.0
	for _, entry := range s.Entries {
		mean += entry.Mass * entry.Fraction
	}
	return mean
}

// String renders the spectrum as a plain text table.
func (s *Spectrum) String() string {
	if len(s.Entries) == 0 {
		return ""
	}
	prec := PrecisionDigits(s.Peak().Mass, 9)
	lines := []string{"Relative mass    Fraction %      Intensity"}
	for _, entry := range s.Entries {
		lines = append(lines, fmt.Sprintf("%-13.*f   %11.6f   %12.6f",
			prec, entry.Mass, entry.Fraction*100, entry.Intensity))
	}
	return strings.Join(lines, "\n")
}

type spectrumKey struct {
	minFraction  float64
	minIntensity float64
}

type spectrumBin struct {
	mass     float64
	fraction float64
}

// Spectrum convolves the isotope distributions of all atoms into a
// combined mass spectrum. Bins whose probability mass falls below
// minFraction are pruned after every atom; non-positive minFraction
// selects DefaultMinFraction. If minIntensity is positive, bins whose
// intensity relative to the strongest bin falls below it are dropped
// from the result without renormalizing. Results are cached per
// parameter pair.
func (f *Formula) Spectrum(minFraction, minIntensity float64) *Spectrum {
	if minFraction <= 0 {
		minFraction = DefaultMinFraction
	}
	key := spectrumKey{minFraction, minIntensity}
	if s, ok := f.spectra[key]; ok {
		return s
	}

	s := &Spectrum{}
	if len(f.elems) > 0 {
		s.Entries = f.convolve(minFraction, minIntensity)
	}
	if f.spectra == nil {
		f.spectra = make(map[spectrumKey]*Spectrum)
	}
	f.spectra[key] = s
	return s
}

func (f *Formula) convolve(minFraction, minIntensity float64) []SpectrumEntry {
	bins := map[int]*spectrumBin{0: {mass: 0, fraction: 1}}

	merge := func(key int, mass, fract float64) {
		if bin, ok := bins[key]; ok {
			bin.mass = (bin.fraction*bin.mass + fract*mass) / (bin.fraction + fract)
			bin.fraction += fract
		} else {
			bins[key] = &spectrumBin{mass: mass, fraction: fract}
		}
	}

	for _, symbol := range f.sortedSymbols() {
		ele, _ := elements.Lookup(symbol)
		isotopes := f.elems[symbol]
		for _, massnumber := range sortedMassNumbers(isotopes) {
			count := isotopes[massnumber]
			if massnumber != 0 {
				// explicit isotope: a deterministic shift of every bin
				iso, _ := ele.Isotope(massnumber)
				for _, key := range binKeysDescending(bins) {
					bin := bins[key]
					delete(bins, key)
					if bin.fraction < minFraction {
						continue
					}
					merge(key+iso.MassNumber*count,
						bin.mass+iso.Mass*float64(count), bin.fraction)
				}
			} else {
				// natural distribution: one convolution step per atom
				for atom := 0; atom < count; atom++ {
					for _, key := range binKeysDescending(bins) {
						bin := bins[key]
						delete(bins, key)
						if bin.fraction < minFraction {
							continue
						}
						for _, iso := range ele.Isotopes {
							merge(key+iso.MassNumber,
								bin.mass+iso.Mass, bin.fraction*iso.Abundance)
						}
					}
				}
			}
		}
	}

	if f.charge != 0 {
		shift := -elements.Electron.Mass * float64(f.charge)
		for _, bin := range bins {
			bin.mass += shift
		}
	}

	maxFraction := 0.0
	for _, bin := range bins {
		if bin.fraction > maxFraction {
			maxFraction = bin.fraction
		}
	}
	divisor := float64(abs(f.charge))
	if divisor < 1 {
		divisor = 1
	}

	entries := make([]SpectrumEntry, 0, len(bins))
	for key, bin := range bins {
		intensity := bin.fraction / maxFraction * 100
		if minIntensity > 0 && intensity < minIntensity {
			continue
		}
		entries = append(entries, SpectrumEntry{
			MassNumber: key,
			Mass:       bin.mass,
			Fraction:   bin.fraction,
			Intensity:  intensity,
			MZ:         bin.mass / divisor,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MassNumber < entries[j].MassNumber
	})
	return entries
}

// binKeysDescending snapshots the bin keys in descending order so new
// bins spawned at higher mass numbers do not interfere with the sweep.
func binKeysDescending(bins map[int]*spectrumBin) []int {
	keys := make([]int, 0, len(bins))
	for key := range bins {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))
	return keys
}
