package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gowing/internal/atmos"
	"github.com/alexiusacademia/gowing/internal/spar"
	"github.com/cpmech/gosl/chk"
)

const sampleCase = `
name: SAE Aero main wing
wing:
  span: 4.572
  root_chord: 0.9144
  tip_chord: 0.3048
  lift_coefficient: 1.2
  velocity: 15
  altitude: 0
analysis:
  stations: 50
  lift_model: schrenk
spar:
  material: 7075-T6
  start:
    height: 25
    width: 12
    web_thickness: 1
    flange_thickness: 1.5
torsion:
  distance: 0.05
`

func Test_case01(tst *testing.T) {

	chk.PrintTitle("case01. YAML case with defaults")

	c, err := ParseCase([]byte(sampleCase))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	c.ApplyDefaults(DefaultSettings())

	chk.Int(tst, "stations", c.Analysis.Stations, 50)
	chk.Float64(tst, "safety factor", 1e-15, c.Analysis.SafetyFactor, 1.3)
	chk.Float64(tst, "load factor  ", 1e-15, c.Analysis.LoadFactor, 1)
	chk.Float64(tst, "start H      ", 1e-15, c.Spar.Start.Height, 25)
	chk.Float64(tst, "torsion e    ", 1e-15, c.Torsion.Distance, 0.05)
	if c.Spar.Steps != spar.DefaultSteps() {
		tst.Errorf("expected default spar steps, got %+v", c.Spar.Steps)
	}
	if c.Analysis.LiftModel != "schrenk" {
		tst.Errorf("lift model override lost: %q", c.Analysis.LiftModel)
	}

	w, err := c.BuildWing()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cond, _ := atmos.Density(0, 0, 0)
	chk.Float64(tst, "ρ from altitude", 1e-15, w.Density, cond.Density)
}

func Test_case02(tst *testing.T) {

	chk.PrintTitle("case02. invalid cases")

	if _, err := ParseCase([]byte("wing: [1, 2")); err == nil {
		tst.Errorf("malformed YAML must be rejected")
	}
	if _, err := ParseCase([]byte("wing:\n  humidity: 150\n")); err == nil {
		tst.Errorf("humidity above 100 %% must be rejected")
	}
	c, _ := ParseCase([]byte("wing:\n  span: 0\n  root_chord: 1\n  velocity: 10\n  density: 1.2\n"))
	if _, err := c.BuildWing(); err == nil {
		tst.Errorf("zero span must be rejected")
	}
}

func Test_case03(tst *testing.T) {

	chk.PrintTitle("case03. partial spar settings keep what was given")

	c, err := ParseCase([]byte(`
name: partial
spar:
  max_tip_deflection: 0.08
  start:
    height: 30
  steps:
    max_iterations: 50
`))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	c.ApplyDefaults(DefaultSettings())

	start := spar.DefaultStart()
	chk.Float64(tst, "H kept       ", 1e-15, c.Spar.Start.Height, 30)
	chk.Float64(tst, "B default    ", 1e-15, c.Spar.Start.Width, start.Width)
	chk.Float64(tst, "tw default   ", 1e-15, c.Spar.Start.WebThickness, start.WebThickness)
	chk.Float64(tst, "tf default   ", 1e-15, c.Spar.Start.FlangeThickness, start.FlangeThickness)
	chk.Int(tst, "iterations kept", c.Spar.Steps.MaxIterations, 50)
	chk.Float64(tst, "dH default   ", 1e-15, c.Spar.Steps.Height, spar.DefaultSteps().Height)
	chk.Float64(tst, "dB default   ", 1e-15, c.Spar.Steps.Width, spar.DefaultSteps().Width)
	chk.Float64(tst, "tip limit    ", 1e-15, c.Spar.MaxTipDeflection, 0.08)

	// depth-only growth
	c, _ = ParseCase([]byte("spar:\n  steps:\n    height_step: 2\n"))
	c.ApplyDefaults(DefaultSettings())
	chk.Float64(tst, "dH kept", 1e-15, c.Spar.Steps.Height, 2)
	chk.Float64(tst, "dB zero", 1e-15, c.Spar.Steps.Width, 0)
	chk.Int(tst, "iterations default", c.Spar.Steps.MaxIterations, spar.DefaultSteps().MaxIterations)
}

func Test_settings01(tst *testing.T) {

	chk.PrintTitle("settings01. INI settings and environment")

	dir := tst.TempDir()
	path := filepath.Join(dir, "gowing.ini")
	data := "[pipeline]\nstations = 64\nsafety_factor = 1.5\n\n[spar]\nheight_step = 2\n\n[log]\nlevel = debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		tst.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Int(tst, "stations", s.Stations, 64)
	chk.Float64(tst, "sf      ", 1e-15, s.SafetyFactor, 1.5)
	chk.Float64(tst, "dH      ", 1e-15, s.SparSteps.Height, 2)
	chk.Float64(tst, "dB      ", 1e-15, s.SparSteps.Width, 0.5)
	if s.LogLevel != "debug" || s.LiftModel != "elliptical" {
		tst.Errorf("unexpected settings %+v", s)
	}

	tst.Setenv(EnvLogLevel, "error")
	s, _ = LoadSettings(path)
	if s.LogLevel != "error" {
		tst.Errorf("environment must override the file, got %q", s.LogLevel)
	}

	if _, err := LoadSettings(filepath.Join(dir, "missing.ini")); err == nil {
		tst.Errorf("an explicit missing settings file must be an error")
	}
	if err := SetupLogging("loud"); err == nil {
		tst.Errorf("unknown log level must be rejected")
	}
}
