package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/MolMass/pkg/formula"
	"github.com/ChrisMcGann/MolMass/pkg/reader/formulas"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Compute masses for a list of formulas",
	Long: `Read a formula list file and print one tab separated line per formula
with its Hill notation, average mass, monoisotopic mass, nominal mass,
and charge.

Each non-empty line of the input holds one formula; text after '#' is
treated as a comment. Formulas that fail to parse are reported on
standard error and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	inFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer inFile.Close()

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
	cfg := formula.Config{Groups: groups}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "formula\thill\taverage\tmonoisotopic\tnominal\tcharge")

	reader := formulas.NewReader(inFile)
	count := 0
	skipped := 0

	for reader.Next() {
		entry := reader.Entry()

		f, err := cfg.Parse(entry.Formula)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: line %d: %v\n", entry.Line, err)
			skipped++
			continue
		}

		iso := f.Isotope()
		prec := formula.PrecisionDigits(f.Mass(), 9)
		fmt.Fprintf(w, "%s\t%s\t%.*f\t%.*f\t%d\t%d\n",
			entry.Formula, f.Hill(), prec, f.Mass(), prec, iso.Mass,
			iso.MassNumber, f.Charge())
		count++
	}

	if err := reader.Err(); err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}

	if skipped > 0 {
		fmt.Fprintf(os.Stderr, "Skipped: %d formulas (parse errors)\n", skipped)
	}
	return nil
}
