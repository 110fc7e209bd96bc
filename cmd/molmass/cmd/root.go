// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for analyze command
	maxAtoms     int
	minFraction  float64
	minIntensity float64
	groupsFile   string

	// Flags for elements export
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "molmass",
	Short: "MolMass - Molecular mass calculator",
	Long: `MolMass calculates the molecular mass (average, nominal, and isotopic
pure), the elemental composition, and the mass distribution spectrum of a
molecule given by its chemical formula, relative element weights, or sequence.

Calculations are based on the isotopic composition of the elements. Mass
deficiency due to chemical bonding is not taken into account.

Examples of valid formulas are H2O, [2H]2O, CH3COOH, EtOH, CuSO4.5H2O,
(COOH)2, AgCuRu4(H)2[CO]12{PPh3}2, CGCGAATTCGCG, and MDRGEQGLLK.

Formulas are case sensitive and + denotes the arithmetic operator, not an
ion charge; charges are written as a trailing suffix, e.g. SO4_2-.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(elementsCmd)

	// Analyze command flags
	analyzeCmd.Flags().IntVar(&maxAtoms, "max-atoms", 0, "Skip mass distribution above this atom count (0 = default 250)")
	analyzeCmd.Flags().Float64Var(&minFraction, "min-fraction", 0, "Prune spectrum bins below this fraction (0 = default 1e-9)")
	analyzeCmd.Flags().Float64Var(&minIntensity, "min-intensity", 0, "Drop spectrum bins below this intensity percentage (0 = keep all)")
	analyzeCmd.Flags().StringVar(&groupsFile, "groups", "", "Path to YAML file with additional group abbreviations")

	// Batch command flags
	batchCmd.Flags().StringVar(&groupsFile, "groups", "", "Path to YAML file with additional group abbreviations")
	batchCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write the table to a file instead of standard output")

	// Elements command flags
	elementsCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Export the periodic table to a SQLite database file")
}
