package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/diagram"
)

var (
	// Sizing inputs (ft, ft/s, rad/s)
	ailSpan          float64
	ailArea          float64
	ailRollRate      float64
	ailAirspeed      float64
	ailEffectiveness float64
	ailTaper         float64
	ailRootChord     float64
	ailClDelta       float64

	// Hinge torque inputs
	hingeSurface aero.Aileron
)

var aileronCmd = &cobra.Command{
	Use:   "aileron",
	Short: "Aileron sizing and hinge torque",
	Long: `Estimate aileron geometry from a roll rate requirement and the hinge
torque of a control surface.

Subcommands:
  size   - Aileron area, span and chord from the desired roll rate
  hinge  - Hinge torque from the average chord and hinge position

Inputs are in US customary units (ft, ft/s, slug/ft³).`,
}

var aileronSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size the aileron for a roll rate",
	Long: `Estimate the aileron area with Gudmundsson's relation from the desired
roll rate. The aileron runs from 70 % to 90 % of the span with a chord of
25 % of the average wing chord. When the estimate exceeds the wing area it
is capped at 12 % of the wing area.

Examples:
  gowing aileron size --span 15 --area 30 --roll-rate 0.274 --airspeed 30 \
    --effectiveness 0.9 --taper 0.333 --root-chord 3`,
	Run: runAileronSize,
}

var aileronHingeCmd = &cobra.Command{
	Use:   "hinge",
	Short: "Hinge torque of a control surface",
	Long: `Compute the aileron lift q·CL·c_avg·span, its arm from the hinge line to
the quarter chord and the resulting hinge torque in in·lb.

Examples:
  gowing aileron hinge --root-chord 0.5 --tip-chord 0.333 --span 2.58333 \
    --hinge 0.1 --cl 1.2 --velocity 38`,
	Run: runAileronHinge,
}

func init() {
	rootCmd.AddCommand(aileronCmd)
	aileronCmd.AddCommand(aileronSizeCmd)
	aileronCmd.AddCommand(aileronHingeCmd)

	f := aileronSizeCmd.Flags()
	f.Float64VarP(&ailSpan, "span", "b", 0, "Wing span (ft) [required]")
	f.Float64VarP(&ailArea, "area", "S", 0, "Wing area (ft²) [required]")
	f.Float64Var(&ailRollRate, "roll-rate", 0, "Desired roll rate (rad/s) [required]")
	f.Float64Var(&ailAirspeed, "airspeed", 0, "Airspeed (ft/s) [required]")
	f.Float64Var(&ailEffectiveness, "effectiveness", 0.9, "Aileron effectiveness factor")
	f.Float64Var(&ailTaper, "taper", 1, "Wing taper ratio")
	f.Float64Var(&ailRootChord, "root-chord", 0, "Wing root chord (ft) [required]")
	f.Float64Var(&ailClDelta, "cl-delta", 0, "Lift slope per radian of deflection, 2π·e/AR when 0")
	aileronSizeCmd.MarkFlagRequired("span")
	aileronSizeCmd.MarkFlagRequired("area")
	aileronSizeCmd.MarkFlagRequired("roll-rate")
	aileronSizeCmd.MarkFlagRequired("airspeed")
	aileronSizeCmd.MarkFlagRequired("root-chord")

	h := aileronHingeCmd.Flags()
	h.Float64Var(&hingeSurface.RootChord, "root-chord", 0, "Aileron root chord (ft) [required]")
	h.Float64Var(&hingeSurface.TipChord, "tip-chord", 0, "Aileron tip chord (ft) [required]")
	h.Float64Var(&hingeSurface.Span, "span", 0, "Aileron span (ft) [required]")
	h.Float64Var(&hingeSurface.HingeLine, "hinge", 0, "Hinge line from the leading edge (ft)")
	h.Float64Var(&hingeSurface.LiftCoefficient, "cl", 1.2, "Lift coefficient at full deflection")
	h.Float64Var(&hingeSurface.Density, "density", 0.002377, "Air density (slug/ft³)")
	h.Float64Var(&hingeSurface.Velocity, "velocity", 0, "Airspeed (ft/s) [required]")
	aileronHingeCmd.MarkFlagRequired("root-chord")
	aileronHingeCmd.MarkFlagRequired("tip-chord")
	aileronHingeCmd.MarkFlagRequired("span")
	aileronHingeCmd.MarkFlagRequired("velocity")
}

func runAileronSize(cmd *cobra.Command, args []string) {
	cld := ailClDelta
	if cld == 0 {
		var err error
		cld, err = aero.ClDelta(ailSpan, ailArea, ailEffectiveness)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	r, err := aero.SizeAileron(aero.AileronInput{
		Span:          ailSpan,
		Area:          ailArea,
		RollRate:      ailRollRate,
		Airspeed:      ailAirspeed,
		ClDelta:       cld,
		Effectiveness: ailEffectiveness,
		TaperRatio:    ailTaper,
		RootChord:     ailRootChord,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          AILERON SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("ROLL REQUIREMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span / Area:\t%.3f ft / %.3f ft²\n", ailSpan, ailArea)
	fmt.Fprintf(w, "  Roll Rate:\t%.3f rad/s\n", ailRollRate)
	fmt.Fprintf(w, "  Airspeed:\t%.2f ft/s\n", ailAirspeed)
	fmt.Fprintf(w, "  cl_δ:\t%.4f /rad\n", cld)
	fmt.Fprintf(w, "  cl_δ (taper adjusted):\t%.4f /rad\n", r.ClDeltaAdjusted)
	fmt.Fprintf(w, "  Rolling Moment Coefficient:\t%.5f\n", r.RollingMoment)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("AILERON", []string{
		fmt.Sprintf("Area   = %.3f ft²", r.Area),
		fmt.Sprintf("Length = %.3f ft (%.0f %% to %.0f %% span)", r.Length, 100*aero.AileronStart, 100*aero.AileronEnd),
		fmt.Sprintf("Chord  = %.3f ft", r.Chord),
	}))
	if r.Capped {
		fmt.Println()
		fmt.Printf("  Note: estimate exceeded the wing area, capped at %.0f %%\n", 100*aero.AileronAreaCap)
	}
	fmt.Println()
}

func runAileronHinge(cmd *cobra.Command, args []string) {
	a := hingeSurface
	if a.RootChord <= 0 || a.Span <= 0 || a.Velocity <= 0 || a.Density <= 0 {
		fmt.Println("Error: chord, span, velocity and density must be positive.")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          AILERON HINGE TORQUE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Average Chord:\t%.4f ft\n", a.AverageChord())
	fmt.Fprintf(w, "  Lift Force:\t%.3f lb\n", a.LiftForce())
	fmt.Fprintf(w, "  Moment Arm:\t%.4f ft\n", a.MomentArm())
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("HINGE TORQUE", []string{
		fmt.Sprintf("T = %.3f in·lb", a.HingeTorque()),
	}))
	fmt.Println()
}
