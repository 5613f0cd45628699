package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/version"
)

var (
	configFile string
	logLevel   string

	// settings holds the tool defaults after PersistentPreRunE
	settings = config.DefaultSettings()
)

var rootCmd = &cobra.Command{
	Use:   "gowing",
	Short: "Spanwise Wing Structural Loads Tool",
	Long: `gowing - Go Wing Structural Loads

A CLI tool for the preliminary structural sizing of a straight tapered wing.

This tool helps designers perform:
  - Elliptical and Schrenk spanwise lift distributions
  - Load, shear force and bending moment accumulation from the tip
  - Hollow rectangular spar sizing against the root bending moment
  - Torsional load from the aerodynamic to shear center offset
  - Flight load cases, atmosphere, wing loading and aileron sizing

Defaults are read from gowing.ini (or --config / $GOWING_CONFIG) and a
.env file in the working directory.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		s, err := config.LoadSettings(configFile)
		if err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
		if logLevel != "" {
			s.LogLevel = logLevel
		}
		if err := config.SetupLogging(s.LogLevel); err != nil {
			return err
		}
		settings = s

		log.WithFields(log.Fields{
			"command":  cmd.CommandPath(),
			"stations": s.Stations,
			"sf":       s.SafetyFactor,
			"model":    s.LiftModel,
		}).Debug("settings loaded")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowing v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wing Structural Loads                                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for spanwise lift, shear, bending moment,")
		fmt.Println("  spar sizing and torsion of a tapered wing.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Elliptical and Schrenk lift distributions")
		fmt.Println("    • Hollow rectangular spar design and analysis")
		fmt.Println("    • Torsional load and flight load cases")
		fmt.Println("    • Workbook, PDF and chart output from YAML case files")
		fmt.Println()
		fmt.Println("  Use 'gowing --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (INI), default gowing.ini")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
