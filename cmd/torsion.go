package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/torsion"
)

var (
	torsionWing   wingFlags
	torsionOffset torsion.Offset

	torsionRows        int
	torsionShowDiagram bool
)

var torsionCmd = &cobra.Command{
	Use:   "torsion",
	Short: "Torsional load from the aerodynamic to shear center offset",
	Long: `Compute the torque per unit span T'(y) = L'(y)·e(y) and integrate it over
the half span with the trapezoidal rule.

The offset e is either a constant distance (--offset, m) or the distance
between the shear center and the aerodynamic center as chord fractions:
  e(y) = (x_sc - x_ac)·c(y)

Examples:
  # Constant 5 cm offset
  gowing torsion -b 4.57 --root-chord 0.91 --tip-chord 0.30 --cl 1.2 -v 15 --offset 0.05

  # Elastic axis at 40 % chord
  gowing torsion -b 4.57 --root-chord 0.91 -v 15 --sc 0.40`,
	Run: runTorsion,
}

func init() {
	rootCmd.AddCommand(torsionCmd)

	torsionWing.register(torsionCmd)

	torsionCmd.Flags().Float64Var(&torsionOffset.Distance, "offset", 0, "Constant offset e (m), overrides the chord fractions")
	torsionCmd.Flags().Float64Var(&torsionOffset.AerodynamicCenter, "ac", torsion.DefaultAerodynamicCenter, "Aerodynamic center (fraction of chord)")
	torsionCmd.Flags().Float64Var(&torsionOffset.ShearCenter, "sc", torsion.DefaultShearCenter, "Shear center (fraction of chord)")

	torsionCmd.Flags().IntVar(&torsionRows, "rows", 20, "Station rows to print (0 prints every station)")
	torsionCmd.Flags().BoolVar(&torsionShowDiagram, "diagram", false, "Show ASCII torque chart")
}

func runTorsion(cmd *cobra.Command, args []string) {
	c := torsionWing.toCase("torsion")
	w, err := c.BuildWing()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	model, err := loads.ParseLiftModel(c.Analysis.LiftModel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	y, err := w.Stations(c.Analysis.Stations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	d, err := loads.Compute(w, y, loads.Options{SafetyFactor: c.Analysis.SafetyFactor, Model: model})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result, err := torsion.Compute(w, d, torsionOffset)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SPANWISE TORSIONAL LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printWingInput(w, d)

	fmt.Println("OFFSET:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Offset (e):\t%s\n", result.Offset)
	fmt.Fprintf(tw, "  e at Root:\t%.4f m\n", result.Offset.At(w.Chord(0)))
	fmt.Fprintf(tw, "  e at Tip:\t%.4f m\n", result.Offset.At(w.Chord(w.SemiSpan())))
	tw.Flush()
	fmt.Println()

	printStations(d, torsionRows, true)

	fmt.Println("TORSION RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("HALF-WING TORQUE", []string{
		fmt.Sprintf("T = ∫ T'(y) dy = %.3f N·m", result.Total),
		fmt.Sprintf("T' at root = %.3f N·m/m", result.Torque[0]),
	}))
	fmt.Println()

	if torsionShowDiagram {
		fmt.Println(diagram.PlotASCII("Torque per span (N·m/m), root at left", result.Torque, 10))
		fmt.Println()
		fmt.Println(diagram.PlotASCII("Cumulative torque from tip (N·m)", result.Cumulative, 10))
		fmt.Println()
	}
}
