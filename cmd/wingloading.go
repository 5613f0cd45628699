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
	wlTotalWeight float64
	wlInnerWeight float64
	wlOuterWeight float64
	wlInnerArea   float64
	wlOuterArea   float64
)

var wingLoadingCmd = &cobra.Command{
	Use:   "wingloading",
	Short: "Wing loading of the inner and outer wing panels",
	Long: `Compute the wing loading of the inner panel, the outer panel and the
whole wing in lb/ft² and lb/in².

Examples:
  gowing wingloading --weight 40 --inner-weight 5.25 --outer-weight 3.25 \
    --inner-area 7.8333 --outer-area 7.1667`,
	Run: runWingLoading,
}

func init() {
	rootCmd.AddCommand(wingLoadingCmd)

	wingLoadingCmd.Flags().Float64VarP(&wlTotalWeight, "weight", "w", 0, "Aircraft weight (lb) [required]")
	wingLoadingCmd.Flags().Float64Var(&wlInnerWeight, "inner-weight", 0, "Weight carried by the inner panel (lb)")
	wingLoadingCmd.Flags().Float64Var(&wlOuterWeight, "outer-weight", 0, "Weight carried by the outer panel (lb)")
	wingLoadingCmd.Flags().Float64Var(&wlInnerArea, "inner-area", 0, "Inner panel area (ft²) [required]")
	wingLoadingCmd.Flags().Float64Var(&wlOuterArea, "outer-area", 0, "Outer panel area (ft²) [required]")

	wingLoadingCmd.MarkFlagRequired("weight")
	wingLoadingCmd.MarkFlagRequired("inner-area")
	wingLoadingCmd.MarkFlagRequired("outer-area")
}

func runWingLoading(cmd *cobra.Command, args []string) {
	r, err := aero.WingLoading(wlTotalWeight, wlInnerWeight, wlOuterWeight, wlInnerArea, wlOuterArea)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          WING LOADING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PANEL LOADING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Panel\tlb/ft²\tlb/in²\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────\n")
	fmt.Fprintf(w, "  Inner\t%.4f\t%.6f\n", r.InnerPerFt2, r.InnerPerIn2)
	fmt.Fprintf(w, "  Outer\t%.4f\t%.6f\n", r.OuterPerFt2, r.OuterPerIn2)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("TOTAL WING LOADING", []string{
		fmt.Sprintf("W/S = %.4f lb/ft²", r.TotalPerFt2),
		fmt.Sprintf("W/S = %.6f lb/in²", r.TotalPerIn2),
	}))
	fmt.Println()
}
