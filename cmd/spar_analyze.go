package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/spar"
)

var (
	// Analysis inputs
	sparAnalyzeSection  spar.Section
	sparAnalyzeMoment   float64
	sparAnalyzeYield    float64
	sparAnalyzeMaterial string
	sparAnalyzeLength   float64

	sparAnalyzeShowDiagram bool
)

var sparAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Check the bending capacity of a hollow rectangular spar",
	Long: `Compute the section properties, moment capacity Z·σy, bending stress
and margin of safety of a given hollow rectangular spar section.

Examples:
  # 40 x 20 mm 6061-T6 box with 1.5 mm webs and 2 mm flanges at 300 N·m
  gowing spar analyze --height 40 --width 20 --tw 1.5 --tf 2 --moment 300

  # Same section in 7075-T6
  gowing spar analyze --height 40 --width 20 --tw 1.5 --tf 2 -m 300 --material 7075-T6

  # Tip deflection of a 1.5 m half span carrying 300 N·m at the root
  gowing spar analyze --height 40 --width 20 --tw 1.5 --tf 2 -m 300 --length 1.5`,
	Run: runSparAnalyze,
}

func init() {
	sparCmd.AddCommand(sparAnalyzeCmd)

	// Geometry flags
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeSection.Height, "height", 0, "Outer height H (mm) [required]")
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeSection.Width, "width", 0, "Outer width B (mm) [required]")
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeSection.WebThickness, "tw", 0, "Web thickness tw (mm) [required]")
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeSection.FlangeThickness, "tf", 0, "Flange thickness tf (mm) [required]")

	// Material flags
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeYield, "yield", 0, "Yield strength σy (MPa), overrides --material")
	sparAnalyzeCmd.Flags().StringVar(&sparAnalyzeMaterial, "material", "", materialUsage())

	// Loading flag
	sparAnalyzeCmd.Flags().Float64VarP(&sparAnalyzeMoment, "moment", "m", 0, "Bending moment (N·m)")
	sparAnalyzeCmd.Flags().Float64Var(&sparAnalyzeLength, "length", 0, "Cantilever length (m) for a uniform-load tip deflection estimate")

	sparAnalyzeCmd.MarkFlagRequired("height")
	sparAnalyzeCmd.MarkFlagRequired("width")
	sparAnalyzeCmd.MarkFlagRequired("tw")
	sparAnalyzeCmd.MarkFlagRequired("tf")

	sparAnalyzeCmd.Flags().BoolVar(&sparAnalyzeShowDiagram, "diagram", false, "Show ASCII section and stress diagram")
}

func runSparAnalyze(cmd *cobra.Command, args []string) {
	yield, mat, err := resolveYield(sparAnalyzeYield, sparAnalyzeMaterial)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := spar.Analyze(sparAnalyzeSection, yield, sparAnalyzeMoment)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          HOLLOW RECTANGULAR SPAR ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	sec := result.Section
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Outer Height (H):\t%.2f mm\n", sec.Height)
	fmt.Fprintf(w, "  Outer Width (B):\t%.2f mm\n", sec.Width)
	fmt.Fprintf(w, "  Web Thickness (tw):\t%.2f mm\n", sec.WebThickness)
	fmt.Fprintf(w, "  Flange Thickness (tf):\t%.2f mm\n", sec.FlangeThickness)
	fmt.Fprintf(w, "  Material:\t%s\n", mat.Description)
	fmt.Fprintf(w, "  Yield Strength (σy):\t%.1f MPa\n", yield)
	fmt.Fprintf(w, "  Bending Moment (M):\t%.2f N·m\n", sparAnalyzeMoment)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inner Hollow (b x h):\t%.2f x %.2f mm\n", sec.InnerWidth(), sec.InnerHeight())
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", result.Area)
	fmt.Fprintf(w, "  Second Moment (I):\t%.2f mm⁴\n", result.SecondMoment)
	fmt.Fprintf(w, "  Section Modulus (Z):\t%.2f mm³\n", result.Modulus)
	fmt.Fprintf(w, "  Torsion Constant (J):\t%.2f mm⁴\n", result.TorsionConstant)
	fmt.Fprintf(w, "  Mass per Length:\t%.4f kg/m\n", sec.MassPerLength(mat.Density))
	w.Flush()
	fmt.Println()

	fmt.Println("STIFFNESS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Elastic Modulus (E):\t%.1f GPa\n", mat.ElasticModulus)
	fmt.Fprintf(w, "  Shear Modulus (G):\t%.1f GPa\n", mat.ShearModulus)
	fmt.Fprintf(w, "  Bending Rigidity (EI):\t%.2f N·m²\n", sec.FlexuralRigidity(mat.ElasticModulus))
	fmt.Fprintf(w, "  Torsional Rigidity (GJ):\t%.2f N·m²\n", sec.TorsionalRigidity(mat.ShearModulus))
	if sparAnalyzeLength > 0 && sparAnalyzeMoment > 0 {
		fmt.Fprintf(w, "  Tip Deflection (M·L²/4EI):\t%.2f mm over %.3f m\n",
			1e3*result.TipDeflection(mat.ElasticModulus, sparAnalyzeLength), sparAnalyzeLength)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("Z·σy = %.2f N·m", result.MomentCapacity),
		fmt.Sprintf("σ = %.2f MPa", result.Stress),
	}
	if sparAnalyzeMoment > 0 {
		lines = append(lines,
			fmt.Sprintf("Utilization = %.1f %%", 100*result.Utilization),
			fmt.Sprintf("Margin of Safety = %.3f", result.MarginOfSafety))
	}
	fmt.Print(diagram.DrawSummaryBox("MOMENT CAPACITY", lines))
	fmt.Println()
	fmt.Printf("  Status: %s\n", result.Message)
	fmt.Println()

	if sparAnalyzeShowDiagram {
		fmt.Println(diagram.DrawASCIISparSection(diagram.SparDiagramData{
			Section: sec,
			Moment:  sparAnalyzeMoment,
			Stress:  result.Stress,
			Yield:   yield,
		}))
	}
}
