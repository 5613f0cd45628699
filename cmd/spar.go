package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/material"
)

var sparCmd = &cobra.Command{
	Use:   "spar",
	Short: "Hollow rectangular spar design and analysis",
	Long: `Design and analyze hollow rectangular (box) spars in bending.

Subcommands:
  design   - Grow a section until Z = I/(H/2) meets M/σy
  analyze  - Check the capacity of a given section

Dimensions are in mm, stresses in MPa and moments in N·m.`,
}

func init() {
	rootCmd.AddCommand(sparCmd)
}

// resolveYield returns the yield strength from the flag, or from the named
// material when the flag is zero
func resolveYield(yield float64, name string) (float64, material.Material, error) {
	if name == "" {
		name = material.Default
	}
	m, err := material.Lookup(name)
	if err != nil {
		return 0, m, err
	}
	if yield > 0 {
		return yield, m, nil
	}
	if yield < 0 {
		return 0, m, fmt.Errorf("yield strength must be positive, got %.4g MPa", yield)
	}
	return m.YieldStrength, m, nil
}

func materialUsage() string {
	return fmt.Sprintf("Spar material, one of %s (default %s)", strings.Join(material.Names(), ", "), material.Default)
}
