package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/loadcase"
	"github.com/alexiusacademia/gowing/internal/pipeline"
	"github.com/alexiusacademia/gowing/internal/report"
)

var (
	analyzeCaseFile string

	analyzeRows        int
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeXLSX        string
	analyzePDF         string
	analyzeAuthor      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full wing pipeline from a YAML case file",
	Long: `Run lift, load, shear and moment, spar sizing at the root and torsion for
the wing described in a YAML case file, and optionally write a workbook,
a PDF report and charts.

Case file:
  name: Trainer main wing
  wing:
    span: 3.0              # m
    root_chord: 0.40       # m
    tip_chord: 0.25        # m
    lift_coefficient: 1.1
    velocity: 20           # m/s
    altitude: 500          # m, used when density is omitted
  analysis:
    stations: 100
    safety_factor: 1.3
    lift_model: elliptical
    load_factor: 3.8
  spar:
    material: 6061-T6
    max_tip_deflection: 0.15  # m, optional stiffness limit
  torsion:
    shear_center: 0.35
    aerodynamic_center: 0.25

Output files without a directory are written to the output directory
from the settings ([output] dir or $GOWING_OUTPUT_DIR).

Examples:
  gowing analyze --case trainer.yaml
  gowing analyze --case trainer.yaml --xlsx trainer.xlsx --pdf trainer.pdf -o trainer.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeCaseFile, "case", "f", "", "YAML case file [required]")
	analyzeCmd.MarkFlagRequired("case")

	analyzeCmd.Flags().IntVar(&analyzeRows, "rows", 20, "Station rows to print (0 prints every station)")
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII charts and spar section")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export charts to files (png, jpg, tif, svg, eps, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write an Excel workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF report")
	analyzeCmd.Flags().StringVar(&analyzeAuthor, "author", "", "Author shown on the PDF report")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	c, err := config.LoadCase(analyzeCaseFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	c.ApplyDefaults(settings)

	r, err := pipeline.Run(c)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     WING STRUCTURAL ANALYSIS - %s\n", c.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	if c.Description != "" {
		fmt.Printf("  %s\n\n", c.Description)
	}

	printWingInput(r.Wing, r.Loads)
	printLoadSummary(r.Loads)
	printStations(r.Loads, analyzeRows, true)

	fmt.Println("SPAR SIZING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", r.Material.Description)
	fmt.Fprintf(w, "  Yield Strength (σy):\t%.1f MPa\n", r.Yield)
	fmt.Fprintf(w, "  Load Factor (n):\t%.2f\n", r.LoadFactor)
	fmt.Fprintf(w, "  Design Moment (n·M_root):\t%.2f N·m\n", r.DesignMoment)
	fmt.Fprintf(w, "  Half-wing Spar Mass:\t%.3f kg\n", r.SparMass)
	w.Flush()
	fmt.Println()
	printSparDesign(r.Spar, r.Material.Density)

	fmt.Println("DEFLECTION AND TWIST:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("EI = %.2f N·m²", r.Bend.Rigidity),
		fmt.Sprintf("Tip deflection = %.2f mm", 1e3*r.Bend.Tip),
		fmt.Sprintf("Tip slope = %.3f°", r.Bend.TipSlope*180/math.Pi),
	}
	if r.Spar.MaxTip > 0 {
		lines = append(lines, fmt.Sprintf("Limit = %.2f mm (%s governs)", 1e3*r.Spar.MaxTip, r.Spar.GovernedBy))
	}
	if r.Twist != nil {
		lines = append(lines,
			fmt.Sprintf("GJ = %.2f N·m²", r.Twist.Rigidity),
			fmt.Sprintf("Tip twist = %.3f°", r.Twist.Tip*180/math.Pi))
	}
	fmt.Print(diagram.DrawSummaryBox("SPAR AT DESIGN LOAD", lines))
	fmt.Println()

	fmt.Println("TORSION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("HALF-WING TORQUE", []string{
		fmt.Sprintf("Offset e = %s", r.Torsion.Offset),
		fmt.Sprintf("T = %.3f N·m", r.Torsion.Total),
	}))
	fmt.Println()

	m, lc := r.Governing(loadcase.Cases)
	fmt.Printf("  Governing flight case: %s, M = %.2f N·m\n", lc.Description, m)
	fmt.Println()

	if analyzeShowDiagram {
		printCharts(r.Loads)
		fmt.Println(diagram.DrawASCIISparSection(diagram.SparDiagramData{
			Section: r.Spar.Section,
			Moment:  r.DesignMoment,
			Stress:  r.Spar.Stress,
			Yield:   r.Yield,
		}))
	}

	var images []string
	if analyzeExportFile != "" {
		base := diagram.ImageName(outputPath(analyzeExportFile))
		files, err := diagram.ExportDistribution(r.Loads, base)
		if err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		}
		ext := filepath.Ext(base)
		section := strings.TrimSuffix(base, ext) + "_spar" + ext
		if err := diagram.ExportSparSection(r.Spar.Section, section); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			files = append(files, section)
		}
		for _, f := range files {
			fmt.Printf("Diagram exported to: %s\n", f)
		}
		images = embeddable(files)
	}

	if analyzeXLSX != "" {
		path := outputPath(analyzeXLSX)
		if err := report.WriteWorkbook(r, path); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Workbook written to: %s\n", path)
		}
	}
	if analyzePDF != "" {
		path := outputPath(analyzePDF)
		meta := report.Meta{
			Title:   fmt.Sprintf("Wing Structural Analysis - %s", c.Name),
			Project: c.Name,
			Author:  analyzeAuthor,
			Notes:   c.Description,
		}
		if err := report.WritePDF(r, meta, path, images...); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", path)
		}
	}
}

// outputPath places bare file names in the configured output directory
func outputPath(name string) string {
	if filepath.Dir(name) != "." || settings.OutputDir == "" {
		return name
	}
	path := filepath.Join(settings.OutputDir, name)
	if err := os.MkdirAll(settings.OutputDir, 0755); err != nil {
		log.WithError(err).Warn("cannot create output directory")
		return name
	}
	return path
}

// embeddable keeps the images the PDF report can embed
func embeddable(files []string) []string {
	var out []string
	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".png", ".jpg", ".jpeg":
			out = append(out, f)
		}
	}
	return out
}
