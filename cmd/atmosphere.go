package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/atmos"
	"github.com/alexiusacademia/gowing/internal/diagram"
)

var (
	atmosAltitude float64
	atmosHumidity float64
	atmosPressure float64

	// Reynolds number inputs
	atmosVelocity float64
	atmosLength   float64
)

var atmosphereCmd = &cobra.Command{
	Use:   "atmosphere",
	Short: "Air density, viscosity and Reynolds number",
	Long: `Compute the standard atmosphere temperature and pressure at an altitude,
the moist air density for a relative humidity and the dynamic viscosity
from Sutherland's formula. With --velocity and --length the Reynolds
number is reported too.

Examples:
  # Sea level, dry air
  gowing atmosphere

  # 1500 m, 60 % humidity, Reynolds number of a 0.3 m chord at 18 m/s
  gowing atmosphere --altitude 1500 --humidity 60 -v 18 -l 0.3`,
	Run: runAtmosphere,
}

func init() {
	rootCmd.AddCommand(atmosphereCmd)

	atmosphereCmd.Flags().Float64Var(&atmosAltitude, "altitude", 0, "Geometric altitude (m)")
	atmosphereCmd.Flags().Float64Var(&atmosHumidity, "humidity", 0, "Relative humidity (%)")
	atmosphereCmd.Flags().Float64Var(&atmosPressure, "pressure", 0, "Station pressure (Pa), standard pressure when 0")
	atmosphereCmd.Flags().Float64VarP(&atmosVelocity, "velocity", "v", 0, "Airspeed (m/s) for the Reynolds number")
	atmosphereCmd.Flags().Float64VarP(&atmosLength, "length", "l", 0, "Reference length (m) for the Reynolds number")
}

func runAtmosphere(cmd *cobra.Command, args []string) {
	c, err := atmos.Density(atmosAltitude, atmosHumidity, atmosPressure)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          STANDARD ATMOSPHERE - MOIST AIR")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CONDITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Altitude:\t%.1f m\n", c.Altitude)
	fmt.Fprintf(w, "  Temperature:\t%.2f K (%.2f °C)\n", c.Temperature, c.Temperature-273.15)
	fmt.Fprintf(w, "  Pressure:\t%.1f Pa\n", c.Pressure)
	fmt.Fprintf(w, "  Relative Humidity:\t%.1f %%\n", c.Humidity)
	fmt.Fprintf(w, "  Vapor Pressure:\t%.1f Pa\n", c.VaporPressure)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("ρ = %.5f kg/m³ (σ = %.4f)", c.Density, c.Density/atmos.Rho0),
		fmt.Sprintf("μ = %.4e Pa·s", c.Viscosity),
	}
	if atmosVelocity > 0 && atmosLength > 0 {
		re, err := atmos.Reynolds(c.Density, atmosVelocity, atmosLength, c.Viscosity)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lines = append(lines, fmt.Sprintf("Re = %.4e (V = %.2f m/s, L = %.3f m)", re, atmosVelocity, atmosLength))
	}
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("AIR PROPERTIES", lines))
	fmt.Println()
}
