package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	loadsWing wingFlags

	// Output options
	loadsRows        int
	loadsShowDiagram bool
	loadsExportFile  string
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Spanwise lift, shear force and bending moment of one half wing",
	Long: `Compute the spanwise lift per unit span, the station loads and the shear
force and bending moment accumulated from the tip for one half wing.

Lift models:
  elliptical  L'(y) = 4·CL·ρ·V²·c(y)/(π·b) · sqrt(1-(y/s)²)
  schrenk     L'(y) = q·CL·½(c(y) + c_ell(y))

Lift at the tip station is zero. Load, shear and moment are multiplied by
the safety factor after accumulation.

Examples:
  # 4.57 m span, 0.91 m root and 0.30 m tip chord at 15 m/s, sea level
  gowing loads --span 4.57 --root-chord 0.91 --tip-chord 0.30 --cl 1.2 -v 15

  # Schrenk model with charts
  gowing loads -b 3 --root-chord 0.4 --tip-chord 0.25 -v 20 --model schrenk --diagram`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	loadsWing.register(loadsCmd)

	loadsCmd.Flags().IntVar(&loadsRows, "rows", 20, "Station rows to print (0 prints every station)")
	loadsCmd.Flags().BoolVar(&loadsShowDiagram, "diagram", false, "Show ASCII lift, shear and moment charts")
	loadsCmd.Flags().StringVarP(&loadsExportFile, "output", "o", "", "Export charts to files (png, jpg, tif, svg, eps, pdf)")
}

func runLoads(cmd *cobra.Command, args []string) {
	c := loadsWing.toCase("loads")
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

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SPANWISE LOAD, SHEAR AND BENDING MOMENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printWingInput(w, d)
	printLoadSummary(d)
	printStations(d, loadsRows, false)

	fmt.Println("ROOT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("HALF-WING ROOT (factored)", []string{
		fmt.Sprintf("Shear  V = %.2f N", d.RootShear),
		fmt.Sprintf("Moment M = %.2f N·m", d.RootMoment),
	}))
	fmt.Println()

	if loadsShowDiagram {
		printCharts(d)
	}
	if loadsExportFile != "" {
		exportCharts(d, loadsExportFile)
	}
}

func printWingInput(w *wing.Wing, d *loads.Distribution) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Span (b):\t%.3f m\n", w.Span)
	fmt.Fprintf(tw, "  Root / Tip Chord:\t%.3f / %.3f m\n", w.RootChord, w.TipChord)
	fmt.Fprintf(tw, "  Wing Area (S):\t%.3f m²\n", w.Area())
	fmt.Fprintf(tw, "  Aspect Ratio (AR):\t%.2f\n", w.AspectRatio())
	fmt.Fprintf(tw, "  Taper Ratio (λ):\t%.3f\n", w.TaperRatio())
	fmt.Fprintf(tw, "  MAC:\t%.3f m at y = %.3f m\n", w.MeanAerodynamicChord(), w.MACStation())
	fmt.Fprintf(tw, "  CL:\t%.3f\n", w.LiftCoefficient)
	fmt.Fprintf(tw, "  Air Density (ρ):\t%.4f kg/m³\n", w.Density)
	fmt.Fprintf(tw, "  Velocity (V):\t%.2f m/s\n", w.Velocity)
	fmt.Fprintf(tw, "  Dynamic Pressure (q):\t%.2f Pa\n", w.DynamicPressure())
	fmt.Fprintf(tw, "  Lift Model:\t%s\n", d.Model)
	fmt.Fprintf(tw, "  Stations:\t%d\n", len(d.Stations))
	fmt.Fprintf(tw, "  Safety Factor:\t%.2f\n", d.SafetyFactor)
	tw.Flush()
	fmt.Println()
}

func printLoadSummary(d *loads.Distribution) {
	fmt.Println("DISTRIBUTION SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Total Lift (both halves):\t%.2f N\n", d.TotalLift)
	fmt.Fprintf(tw, "  Peak Lift per Span:\t%.2f N/m\n", d.PeakLift)
	fmt.Fprintf(tw, "  Root Shear:\t%.2f N\n", d.RootShear)
	fmt.Fprintf(tw, "  Root Moment:\t%.2f N·m\n", d.RootMoment)
	tw.Flush()
	fmt.Println()
}

// printStations prints at most rows evenly spaced stations, root and tip included
func printStations(d *loads.Distribution, rows int, withTorque bool) {
	fmt.Println("STATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if withTorque {
		fmt.Fprintln(tw, "  y (m)\tc (m)\tL' (N/m)\tV (N)\tM (N·m)\tT' (N·m/m)\t")
	} else {
		fmt.Fprintln(tw, "  y (m)\tc (m)\tL' (N/m)\tLoad (N)\tV (N)\tM (N·m)\t")
	}

	n := len(d.Stations)
	step := 1
	if rows > 1 && n > rows {
		step = (n - 1) / (rows - 1)
	}
	for i := 0; i < n; i += step {
		printStationRow(tw, d.Stations[i], withTorque)
		if i+step > n-1 && i != n-1 {
			printStationRow(tw, d.Stations[n-1], withTorque)
		}
	}
	tw.Flush()
	fmt.Println()
}

func printStationRow(tw *tabwriter.Writer, s loads.Station, withTorque bool) {
	if withTorque {
		fmt.Fprintf(tw, "  %.3f\t%.3f\t%.2f\t%.2f\t%.2f\t%.3f\t\n", s.Y, s.Chord, s.Lift, s.Shear, s.Moment, s.Torque)
		return
	}
	fmt.Fprintf(tw, "  %.3f\t%.3f\t%.2f\t%.3f\t%.2f\t%.2f\t\n", s.Y, s.Chord, s.Lift, s.Load, s.Shear, s.Moment)
}

func printCharts(d *loads.Distribution) {
	for _, s := range diagram.DistributionSeries(d) {
		fmt.Println(diagram.PlotASCII(fmt.Sprintf("%s (%s), root at left", s.Name, s.Unit), s.Values, 10))
		fmt.Println()
	}
}

func exportCharts(d *loads.Distribution, base string) {
	files, err := diagram.ExportDistribution(d, base)
	if err != nil {
		fmt.Printf("Error exporting diagram: %v\n", err)
		return
	}
	for _, f := range files {
		fmt.Printf("Diagram exported to: %s\n", f)
	}
}
