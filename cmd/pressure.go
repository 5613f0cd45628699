package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	cpAirfoil aero.Airfoil

	// Optional planform for the spanwise arms
	cpSpan     float64
	cpTipChord float64
	cpStations int
)

var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Center of pressure and spanwise moment arms",
	Long: `Compute the section lift q·CL·c and pitching moment q·Cm·c² about the
aerodynamic center, and the center of pressure x_cp = c/4 + M_ac/L from
the leading edge.

With --span the quarter-chord lift arm and mid-chord drag arm are listed
along the span of a tapered wing using --chord as the root chord.

Examples:
  gowing pressure --chord 36 --cl 1.274 --cm -0.176 --density 0.0023769 -v 38
  gowing pressure --chord 36 --cl 1.274 --cm -0.176 -v 38 --span 180 --tip-chord 12`,
	Run: runPressure,
}

func init() {
	rootCmd.AddCommand(pressureCmd)

	pressureCmd.Flags().Float64VarP(&cpAirfoil.Chord, "chord", "c", 0, "Section chord [required]")
	pressureCmd.Flags().Float64Var(&cpAirfoil.LiftCoefficient, "cl", 0, "Section lift coefficient [required]")
	pressureCmd.Flags().Float64Var(&cpAirfoil.MomentCoefficient, "cm", 0, "Moment coefficient about the aerodynamic center")
	pressureCmd.Flags().Float64Var(&cpAirfoil.Density, "density", 1.225, "Air density")
	pressureCmd.Flags().Float64VarP(&cpAirfoil.Velocity, "velocity", "v", 0, "Airspeed [required]")

	pressureCmd.Flags().Float64Var(&cpSpan, "span", 0, "Full span for the spanwise arm table")
	pressureCmd.Flags().Float64Var(&cpTipChord, "tip-chord", 0, "Tip chord, defaults to --chord")
	pressureCmd.Flags().IntVarP(&cpStations, "stations", "n", 5, "Stations in the arm table")

	pressureCmd.MarkFlagRequired("chord")
	pressureCmd.MarkFlagRequired("cl")
	pressureCmd.MarkFlagRequired("velocity")
}

func runPressure(cmd *cobra.Command, args []string) {
	xcp, err := cpAirfoil.CenterOfPressure()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lift, moment := cpAirfoil.Forces()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CENTER OF PRESSURE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION FORCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Lift per Span (L'):\t%.4f\n", lift)
	fmt.Fprintf(w, "  Moment about a.c. (M_ac):\t%.4f\n", moment)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("CENTER OF PRESSURE", []string{
		fmt.Sprintf("x_cp = %.4f from the leading edge", xcp),
		fmt.Sprintf("x_cp/c = %.4f", xcp/cpAirfoil.Chord),
	}))
	fmt.Println()

	if cpSpan <= 0 {
		return
	}
	tip := cpTipChord
	if tip == 0 {
		tip = cpAirfoil.Chord
	}
	wg := wing.New(cpSpan, cpAirfoil.Chord, tip, cpAirfoil.LiftCoefficient, cpAirfoil.Density, cpAirfoil.Velocity)
	y, err := wg.Stations(cpStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	liftArms, dragArms := aero.MomentArms(wg, y)

	fmt.Println("SPANWISE MOMENT ARMS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  y\tChord\tLift Arm (c/4)\tDrag Arm (c/2)\t")
	for i := range y {
		fmt.Fprintf(w, "  %.3f\t%.3f\t%.3f\t%.3f\t\n", y[i], wg.Chord(y[i]), liftArms[i], dragArms[i])
	}
	w.Flush()
	fmt.Println()
}
