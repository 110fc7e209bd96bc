package formula

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Groups maps abbreviations of common chemical groups to their formulas.
// During normalization each occurrence of a key is replaced by its
// parenthesized expansion, longest key first.
var Groups = map[string]string{
	"Abu":     "C4H7NO",
	"Acet":    "C2H3O",
	"Acm":     "C3H6NO",
	"Adao":    "C10H15O",
	"Aib":     "C4H7NO",
	"Ala":     "C3H5NO",
	"Arg":     "C6H12N4O",
	"Argp":    "C6H11N4O",
	"Asn":     "C4H6N2O2",
	"Asnp":    "C4H5N2O2",
	"Asp":     "C4H5NO3",
	"Aspp":    "C4H4NO3",
	"Asu":     "C8H13NO3",
	"Asup":    "C8H12NO3",
	"Boc":     "C5H9O2",
	"Bom":     "C8H9O",
	"Bpy":     "C10H8N2",
	"Brz":     "C8H6BrO2",
	"Bu":      "C4H9",
	"Bum":     "C5H11O",
	"Bz":      "C7H5O",
	"Bzl":     "C7H7",
	"Bzlo":    "C7H7O",
	"Cha":     "C9H15NO",
	"Chxo":    "C6H11O",
	"Cit":     "C6H11N3O2",
	"Citp":    "C6H10N3O2",
	"Clz":     "C8H6ClO2",
	"Cp":      "C5H5",
	"Cy":      "C6H11",
	"Cys":     "C3H5NOS",
	"Cysp":    "C3H4NOS",
	"Dde":     "C10H13O2",
	"Dnp":     "C6H3N2O4",
	"Et":      "C2H5",
	"Fmoc":    "C15H11O2",
	"For":     "CHO",
	"Gln":     "C5H8N2O2",
	"Glnp":    "C5H7N2O2",
	"Glp":     "C5H5NO2",
	"Glu":     "C5H7NO3",
	"Glup":    "C5H6NO3",
	"Gly":     "C2H3NO",
	"Hci":     "C7H13N3O2",
	"Hcip":    "C7H12N3O2",
	"His":     "C6H7N3O",
	"Hisp":    "C6H6N3O",
	"Hser":    "C4H7NO2",
	"Hserp":   "C4H6NO2",
	"Hx":      "C6H11",
	"Hyp":     "C5H7NO2",
	"Hypp":    "C5H6NO2",
	"Ile":     "C6H11NO",
	"Ivdde":   "C14H21O2",
	"Leu":     "C6H11NO",
	"Lys":     "C6H12N2O",
	"Lysp":    "C6H11N2O",
	"Mbh":     "C15H15O2",
	"Me":      "CH3",
	"Mebzl":   "C8H9",
	"Meobzl":  "C8H9O",
	"Met":     "C5H9NOS",
	"Mmt":     "C20H17O",
	"Mtc":     "C14H19O3S",
	"Mtr":     "C10H13O3S",
	"Mts":     "C9H11O2S",
	"Mtt":     "C20H17",
	"Nle":     "C6H11NO",
	"Npys":    "C5H3N2O2S",
	"Nva":     "C5H9NO",
	"Odmab":   "C20H26NO3",
	"Orn":     "C5H10N2O",
	"Ornp":    "C5H9N2O",
	"Pbf":     "C13H17O3S",
	"Pen":     "C5H9NOS",
	"Penp":    "C5H8NOS",
	"Ph":      "C6H5",
	"Phe":     "C9H9NO",
	"Phepcl":  "C9H8ClNO",
	"Phg":     "C8H7NO",
	"Pmc":     "C14H19O3S",
	"Ppa":     "C8H7O2",
	"Pro":     "C5H7NO",
	"Prop":    "C3H7",
	"Py":      "C5H5N",
	"Pyr":     "C5H5NO2",
	"Sar":     "C3H5NO",
	"Ser":     "C3H5NO2",
	"Serp":    "C3H4NO2",
	"Sta":     "C8H15NO2",
	"Stap":    "C8H14NO2",
	"Tacm":    "C6H12NO",
	"Tbdms":   "C6H15Si",
	"Tbu":     "C4H9",
	"Tbuo":    "C4H9O",
	"Tbuthio": "C4H9S",
	"Tfa":     "C2F3O",
	"Thi":     "C7H7NOS",
	"Thr":     "C4H7NO2",
	"Thrp":    "C4H6NO2",
	"Tips":    "C9H21Si",
	"Tms":     "C3H9Si",
	"Tos":     "C7H7O2S",
	"Trp":     "C11H10N2O",
	"Trpp":    "C11H9N2O",
	"Trt":     "C19H15",
	"Tyr":     "C9H9NO2",
	"Tyrp":    "C9H8NO2",
	"Val":     "C5H9NO",
	"Valoh":   "C5H9NO2",
	"Valohp":  "C5H8NO2",
	"Xan":     "C13H9O",
}

// AminoAcids maps one-letter amino acid codes to residue formulas
// (amino acid minus water).
var AminoAcids = map[byte]string{
	'G': "C2H3NO",    // Glycine
	'P': "C5H7NO",    // Proline
	'A': "C3H5NO",    // Alanine
	'V': "C5H9NO",    // Valine
	'L': "C6H11NO",   // Leucine
	'I': "C6H11NO",   // Isoleucine
	'M': "C5H9NOS",   // Methionine
	'C': "C3H5NOS",   // Cysteine
	'F': "C9H9NO",    // Phenylalanine
	'Y': "C9H9NO2",   // Tyrosine
	'W': "C11H10N2O", // Tryptophan
	'H': "C6H7N3O",   // Histidine
	'K': "C6H12N2O",  // Lysine
	'R': "C6H12N4O",  // Arginine
	'Q': "C5H8N2O2",  // Glutamine
	'N': "C4H6N2O2",  // Asparagine
	'E': "C5H7NO3",   // Glutamic acid
	'D': "C4H5NO3",   // Aspartic acid
	'S': "C3H5NO2",   // Serine
	'T': "C4H7NO2",   // Threonine
}

// Deoxynucleotides maps DNA bases to deoxynucleotide monophosphate
// residue formulas (monophosphate minus water).
var Deoxynucleotides = map[byte]string{
	'A': "C10H12N5O5P",
	'T': "C10H13N2O7P",
	'C': "C9H12N3O6P",
	'G': "C10H12N5O6P",
}

// Nucleotides maps RNA bases to nucleotide monophosphate residue
// formulas (monophosphate minus water).
var Nucleotides = map[byte]string{
	'A': "C10H12N5O6P",
	'U': "C9H11N2O8P",
	'C': "C9H12N3O7P",
	'G': "C10H12N5O7P",
}

var dnaComplements = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}

var rnaComplements = map[byte]byte{'A': 'U', 'U': 'A', 'C': 'G', 'G': 'C'}

// LoadGroups reads additional group abbreviations from a YAML document
// mapping abbreviation to formula, e.g.
//
//	EtOH: C2H6O
//	Ac: C2H3O
//
// The returned map includes the built-in Groups table; file entries
// override built-ins with the same key.
func LoadGroups(r io.Reader) (map[string]string, error) {
	var custom map[string]string
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&custom); err != nil {
		return nil, fmt.Errorf("failed to parse groups file: %w", err)
	}
	merged := make(map[string]string, len(Groups)+len(custom))
	for k, v := range Groups {
		merged[k] = v
	}
	for k, v := range custom {
		if k == "" || v == "" {
			return nil, fmt.Errorf("groups file contains empty abbreviation or formula")
		}
		merged[k] = v
	}
	return merged, nil
}
