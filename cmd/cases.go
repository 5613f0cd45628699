package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/loadcase"
)

var (
	// Unfactored 1 g root values
	casesMoment float64
	casesShear  float64

	// Options
	casesShowAll    bool
	casesSimplified bool
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Factor 1 g root loads with the flight load cases",
	Long: `Multiply the unfactored (1 g, no safety factor) root bending moment and
shear by the load factor n and the safety factor of each flight load case,
and report the governing case.

Flight load cases:
  Level flight, positive and negative limit maneuver, positive and
  negative gust (normal category envelope corners, SF = 1.5).

Simplified cases (--simplified) use level flight and a 2.5 g pull-up with
the 1.3 factor of the spanwise load calculation.

Examples:
  # Root moment of 45 N·m at 1 g
  gowing cases --moment 45

  # With shear, show every case
  gowing cases --moment 45 --shear 80 --all`,
	Run: runCases,
}

func init() {
	rootCmd.AddCommand(casesCmd)

	casesCmd.Flags().Float64VarP(&casesMoment, "moment", "m", 0, "Unfactored root bending moment (N·m) [required]")
	casesCmd.Flags().Float64Var(&casesShear, "shear", 0, "Unfactored root shear (N)")
	casesCmd.MarkFlagRequired("moment")

	casesCmd.Flags().BoolVarP(&casesShowAll, "all", "a", false, "Show all load case results")
	casesCmd.Flags().BoolVarP(&casesSimplified, "simplified", "s", false, "Use simplified cases (1 g and 2.5 g, SF 1.3)")
}

func runCases(cmd *cobra.Command, args []string) {
	if casesMoment == 0 {
		fmt.Println("Error: Please provide a non-zero root moment.")
		fmt.Println("Use 'gowing cases --help' for usage information.")
		return
	}

	cases := loadcase.Cases
	if casesSimplified {
		cases = loadcase.SimplifiedCases
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          FLIGHT LOAD CASES - FACTORED ROOT LOADS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED ROOT LOADS (1 g):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bending Moment (M):\t%.2f N·m\n", casesMoment)
	if casesShear != 0 {
		fmt.Fprintf(w, "  Shear (V):\t%.2f N\n", casesShear)
	}
	w.Flush()
	fmt.Println()

	maxM, governing := loadcase.Governing(casesMoment, cases)

	if casesShowAll {
		fmt.Println("LOAD CASES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCase\tn·SF\tM (N·m)\tV (N)\n")
		fmt.Fprintf(w, "  ─\t────\t────\t───────\t─────\n")
		for _, lc := range cases {
			marker := ""
			if lc.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f%s\n",
				lc.ID, lc.Description, lc.Multiplier(), lc.Factored(casesMoment), lc.Factored(casesShear), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Case: %s (%s)\n", governing.ID, governing.Description)
	fmt.Println()
	lines := []string{fmt.Sprintf("M = %.2f N·m", maxM)}
	if casesShear != 0 {
		lines = append(lines, fmt.Sprintf("V = %.2f N", governing.Factored(casesShear)))
	}
	fmt.Print(diagram.DrawSummaryBox("FACTORED ROOT LOADS", lines))
	fmt.Println()
}
