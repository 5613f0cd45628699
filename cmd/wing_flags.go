package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
)

// wingFlags are the wing geometry and flight condition flags shared by
// the loads and torsion commands
type wingFlags struct {
	cmd      *cobra.Command
	spec     config.WingSpec
	stations int
	sf       float64
	model    string
}

func (f *wingFlags) register(cmd *cobra.Command) {
	f.cmd = cmd
	fl := cmd.Flags()
	fl.Float64VarP(&f.spec.Span, "span", "b", 0, "Full wing span (m) [required]")
	fl.Float64Var(&f.spec.RootChord, "root-chord", 0, "Root chord (m) [required]")
	fl.Float64Var(&f.spec.TipChord, "tip-chord", 0, "Tip chord (m), defaults to the root chord")
	fl.Float64Var(&f.spec.LiftCoefficient, "cl", 1.0, "Wing lift coefficient CL")
	fl.Float64VarP(&f.spec.Velocity, "velocity", "v", 0, "Airspeed (m/s) [required]")
	fl.Float64Var(&f.spec.Density, "density", 0, "Air density (kg/m³), computed from --altitude when 0")
	fl.Float64Var(&f.spec.Altitude, "altitude", 0, "Altitude for the standard atmosphere (m)")
	fl.Float64Var(&f.spec.Humidity, "humidity", 0, "Relative humidity (%)")

	fl.IntVarP(&f.stations, "stations", "n", 0, "Number of spanwise stations (default from settings)")
	fl.Float64Var(&f.sf, "sf", 0, "Safety factor on load, shear and moment (default from settings)")
	fl.StringVar(&f.model, "model", "", "Lift model: elliptical or schrenk (default from settings)")

	cmd.MarkFlagRequired("span")
	cmd.MarkFlagRequired("root-chord")
	cmd.MarkFlagRequired("velocity")
}

// toCase builds an analysis case from the flags with the settings as
// fallback
func (f *wingFlags) toCase(name string) *config.Case {
	spec := f.spec
	// an explicit --tip-chord 0 is a pointed tip
	if !f.cmd.Flags().Changed("tip-chord") {
		spec.TipChord = spec.RootChord
	}
	c := &config.Case{
		Name: name,
		Wing: spec,
		Analysis: config.AnalysisSpec{
			Stations:     f.stations,
			SafetyFactor: f.sf,
			LiftModel:    f.model,
		},
	}
	c.ApplyDefaults(settings)
	return c
}
