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
	// Design inputs
	sparDesignMoment   float64
	sparDesignYield    float64
	sparDesignMaterial string
	sparDesignStart    spar.Section
	sparDesignDH       float64
	sparDesignDB       float64
	sparDesignMaxIter  int

	// Diagram options
	sparDesignShowDiagram bool
	sparDesignExportFile  string
)

var sparDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Size a hollow rectangular spar for a bending moment",
	Long: `Find the hollow rectangular section whose section modulus meets the
required modulus Z_req = M/σy.

The search starts from a small section and grows the outer height and width
by fixed steps while keeping the wall thicknesses. Height and width steps
default to the settings file ([spar] height_step, width_step).

Examples:
  # Root moment of 120 N·m in 6061-T6
  gowing spar design --moment 120

  # Spruce spar with a wider starting section
  gowing spar design -m 120 --material spruce --height 30 --width 15 --tw 3 --tf 4`,
	Run: runSparDesign,
}

func init() {
	sparCmd.AddCommand(sparDesignCmd)

	start := spar.DefaultStart()

	// Loading flags
	sparDesignCmd.Flags().Float64VarP(&sparDesignMoment, "moment", "m", 0, "Design bending moment (N·m) [required]")

	// Material flags
	sparDesignCmd.Flags().Float64Var(&sparDesignYield, "yield", 0, "Yield strength σy (MPa), overrides --material")
	sparDesignCmd.Flags().StringVar(&sparDesignMaterial, "material", "", materialUsage())

	// Starting section
	sparDesignCmd.Flags().Float64Var(&sparDesignStart.Height, "height", start.Height, "Starting outer height H (mm)")
	sparDesignCmd.Flags().Float64Var(&sparDesignStart.Width, "width", start.Width, "Starting outer width B (mm)")
	sparDesignCmd.Flags().Float64Var(&sparDesignStart.WebThickness, "tw", start.WebThickness, "Web thickness tw (mm)")
	sparDesignCmd.Flags().Float64Var(&sparDesignStart.FlangeThickness, "tf", start.FlangeThickness, "Flange thickness tf (mm)")

	// Search steps
	sparDesignCmd.Flags().Float64Var(&sparDesignDH, "dh", 0, "Height step per iteration (mm), default from settings")
	sparDesignCmd.Flags().Float64Var(&sparDesignDB, "db", 0, "Width step per iteration (mm), default from settings")
	sparDesignCmd.Flags().IntVar(&sparDesignMaxIter, "max-iter", 0, "Iteration limit, default from settings")

	sparDesignCmd.MarkFlagRequired("moment")

	// Diagram options
	sparDesignCmd.Flags().BoolVar(&sparDesignShowDiagram, "diagram", false, "Show ASCII section and stress diagram")
	sparDesignCmd.Flags().StringVarP(&sparDesignExportFile, "output", "o", "", "Export section drawing to file (png, jpg, tif, svg, eps, pdf)")
}

func runSparDesign(cmd *cobra.Command, args []string) {
	yield, mat, err := resolveYield(sparDesignYield, sparDesignMaterial)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	steps := settings.SparSteps
	if sparDesignDH > 0 {
		steps.Height = sparDesignDH
	}
	if sparDesignDB > 0 {
		steps.Width = sparDesignDB
	}
	if sparDesignMaxIter > 0 {
		steps.MaxIterations = sparDesignMaxIter
	}

	result, err := spar.Design(sparDesignMoment, yield, sparDesignStart, steps)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          HOLLOW RECTANGULAR SPAR DESIGN")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design Moment (M):\t%.2f N·m\n", sparDesignMoment)
	fmt.Fprintf(w, "  Material:\t%s\n", mat.Description)
	fmt.Fprintf(w, "  Yield Strength (σy):\t%.1f MPa\n", yield)
	fmt.Fprintf(w, "  Starting Section:\t%s\n", sparDesignStart)
	fmt.Fprintf(w, "  Steps (ΔH, ΔB):\t%.2f, %.2f mm\n", steps.Height, steps.Width)
	w.Flush()
	fmt.Println()

	printSparDesign(result, mat.Density)

	sec := result.Section
	if sparDesignShowDiagram {
		fmt.Println(diagram.DrawASCIISparSection(diagram.SparDiagramData{
			Section: sec,
			Moment:  sparDesignMoment,
			Stress:  result.Stress,
			Yield:   yield,
		}))
	}
	if sparDesignExportFile != "" {
		if err := diagram.ExportSparSection(sec, sparDesignExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", diagram.ImageName(sparDesignExportFile))
		}
	}
}

func printSparDesign(result *spar.DesignResult, density float64) {
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Required Modulus (Z_req):\t%.2f mm³\n", result.RequiredModulus)
	fmt.Fprintf(w, "  Achieved Modulus (Z):\t%.2f mm³\n", result.Modulus)
	fmt.Fprintf(w, "  Second Moment (I):\t%.2f mm⁴\n", result.SecondMoment)
	fmt.Fprintf(w, "  Area (A):\t%.2f mm²\n", result.Area)
	fmt.Fprintf(w, "  Mass per Length:\t%.4f kg/m\n", result.Section.MassPerLength(density))
	fmt.Fprintf(w, "  Bending Stress (σ):\t%.2f MPa\n", result.Stress)
	fmt.Fprintf(w, "  Iterations:\t%d\n", result.Iterations)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.IsAdequate {
		sec := result.Section
		fmt.Print(diagram.DrawSummaryBox("SPAR SECTION", []string{
			fmt.Sprintf("H x B = %.1f x %.1f mm", sec.Height, sec.Width),
			fmt.Sprintf("tw = %.2f mm, tf = %.2f mm", sec.WebThickness, sec.FlangeThickness),
		}))
		fmt.Println()
		fmt.Printf("  Z·σy = %.2f N·m ≥ M = %.2f N·m ✓\n", result.MomentCapacity, result.Moment)
		fmt.Printf("  Margin of Safety: %.3f\n", result.MarginOfSafety)
		fmt.Println()
		fmt.Printf("  Status: %s\n", result.Message)
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  DESIGN NOT ADEQUATE                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
		fmt.Println()
		fmt.Printf("  %s\n", result.Message)
	}
	fmt.Println()
}
