package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/MolMass/pkg/elements"
	"github.com/ChrisMcGann/MolMass/pkg/writer/sqlite"
)

var elementsCmd = &cobra.Command{
	Use:   "elements [symbol|number]",
	Short: "Show element data or export the periodic table",
	Long: `Show an element's atomic weight and isotope table, or export the whole
periodic table to a SQLite database.

Examples:
  # Show carbon
  molmass elements C

  # Show element 26 by atomic number
  molmass elements 26

  # Export all elements and isotopes to SQLite
  molmass elements --out elements.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runElements,
}

func runElements(cmd *cobra.Command, args []string) error {
	if outputFile != "" {
		writer, err := sqlite.NewWriter(outputFile)
		if err != nil {
			return err
		}
		defer writer.Close()

		count, err := writer.WriteAll()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %d elements to %s\n", count, outputFile)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("specify an element symbol or atomic number, or --out for export")
	}

	var ele *elements.Element
	if number, err := strconv.Atoi(args[0]); err == nil {
		e, ok := elements.ByNumber(number)
		if !ok {
			return fmt.Errorf("unknown atomic number %d", number)
		}
		ele = e
	} else {
		e, ok := elements.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown element symbol '%s'", args[0])
		}
		ele = e
	}

	fmt.Printf("%s (%s)\n", ele.Name, ele.Symbol)
	fmt.Printf("Atomic number: %d\n", ele.Number)
	fmt.Printf("Atomic weight: %.6f\n", ele.Mass)
	fmt.Printf("Nominal mass: %d\n", ele.NominalMass())
	fmt.Println("\nMass number  Relative mass  Abundance %")
	for _, iso := range ele.Isotopes {
		fmt.Printf("%11d  %13.8f  %11.6f\n", iso.MassNumber, iso.Mass, iso.Abundance*100)
	}
	return nil
}
