package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/MolMass/pkg/formula"
	"github.com/ChrisMcGann/MolMass/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [formula...]",
	Short: "Analyze a chemical formula",
	Long: `Analyze a chemical formula and print its masses, elemental composition,
and mass distribution spectrum.

Examples:
  # Analyze a simple formula
  molmass analyze H2O

  # Heavy water, hydrates, and ions
  molmass analyze D2O
  molmass analyze CuSO4.5H2O
  molmass analyze SO4_2-

  # Peptide and DNA sequences
  molmass analyze MDRGEQGLLK
  molmass analyze "dsdna(ATCG)"

  # Custom group abbreviations
  molmass analyze --groups mygroups.yaml EtOAc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var groups map[string]string
	if groupsFile != "" {
		file, err := os.Open(groupsFile)
		if err != nil {
			return fmt.Errorf("cannot open groups file: %w", err)
		}
		defer file.Close()
		groups, err = formula.LoadGroups(file)
		if err != nil {
			return err
		}
	}

	// multiple arguments form a single formula with spaces removed
	input := strings.Join(args, "")

	result := report.AnalyzeWithOptions(input, report.Options{
		MaxAtoms:     maxAtoms,
		MinFraction:  minFraction,
		MinIntensity: minIntensity,
		Groups:       groups,
	})
	fmt.Println(result)
	return nil
}
