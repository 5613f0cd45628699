package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gowing/internal/atmos"
	"github.com/alexiusacademia/gowing/internal/spar"
	"github.com/alexiusacademia/gowing/internal/torsion"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Case is one analysis case read from a YAML file
type Case struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Wing     WingSpec       `yaml:"wing"`
	Analysis AnalysisSpec   `yaml:"analysis"`
	Spar     SparSpec       `yaml:"spar"`
	Torsion  torsion.Offset `yaml:"torsion"`
}

// WingSpec is the wing geometry and flight condition. When Density is
// omitted it is computed from Altitude and Humidity with the standard
// atmosphere.
type WingSpec struct {
	Span            float64 `yaml:"span"`
	RootChord       float64 `yaml:"root_chord"`
	TipChord        float64 `yaml:"tip_chord"`
	LiftCoefficient float64 `yaml:"lift_coefficient"`
	Velocity        float64 `yaml:"velocity"`
	Density         float64 `yaml:"density,omitempty"`
	Altitude        float64 `yaml:"altitude,omitempty"`
	Humidity        float64 `yaml:"humidity,omitempty"`
}

// AnalysisSpec overrides the pipeline settings for a case
type AnalysisSpec struct {
	Stations     int     `yaml:"stations,omitempty"`
	SafetyFactor float64 `yaml:"safety_factor,omitempty"`
	LiftModel    string  `yaml:"lift_model,omitempty"`
	LoadFactor   float64 `yaml:"load_factor,omitempty"`
}

// SparSpec selects the spar material and the sizing search. A positive
// MaxTipDeflection also sizes the spar for stiffness.
type SparSpec struct {
	Material         string       `yaml:"material,omitempty"`
	YieldStrength    float64      `yaml:"yield_strength,omitempty"`     // MPa, overrides the material
	MaxTipDeflection float64      `yaml:"max_tip_deflection,omitempty"` // m
	Start            spar.Section `yaml:"start"`
	Steps            spar.Steps   `yaml:"steps"`
}

// LoadCase reads and validates a YAML case file
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCase(data)
}

// ParseCase decodes a YAML case document
func ParseCase(data []byte) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing case: %w", err)
	}
	if c.Wing.Humidity < 0 || c.Wing.Humidity > 100 {
		return nil, fmt.Errorf("case %q: humidity must be within 0..100 %%", c.Name)
	}
	return &c, nil
}

// ApplyDefaults fills every unset field from the tool settings
func (c *Case) ApplyDefaults(s Settings) {
	if c.Analysis.Stations == 0 {
		c.Analysis.Stations = s.Stations
	}
	if c.Analysis.SafetyFactor == 0 {
		c.Analysis.SafetyFactor = s.SafetyFactor
	}
	if c.Analysis.LiftModel == "" {
		c.Analysis.LiftModel = s.LiftModel
	}
	if c.Analysis.LoadFactor == 0 {
		c.Analysis.LoadFactor = 1
	}
	start := spar.DefaultStart()
	if c.Spar.Start.Height == 0 {
		c.Spar.Start.Height = start.Height
	}
	if c.Spar.Start.Width == 0 {
		c.Spar.Start.Width = start.Width
	}
	if c.Spar.Start.WebThickness == 0 {
		c.Spar.Start.WebThickness = start.WebThickness
	}
	if c.Spar.Start.FlangeThickness == 0 {
		c.Spar.Start.FlangeThickness = start.FlangeThickness
	}
	// a zero step is meaningful once the other one is set
	if c.Spar.Steps.Height == 0 && c.Spar.Steps.Width == 0 {
		c.Spar.Steps.Height = s.SparSteps.Height
		c.Spar.Steps.Width = s.SparSteps.Width
	}
	if c.Spar.Steps.MaxIterations == 0 {
		c.Spar.Steps.MaxIterations = s.SparSteps.MaxIterations
	}
	if c.Torsion.Distance == 0 {
		if c.Torsion.AerodynamicCenter == 0 {
			c.Torsion.AerodynamicCenter = torsion.DefaultAerodynamicCenter
		}
		if c.Torsion.ShearCenter == 0 {
			c.Torsion.ShearCenter = torsion.DefaultShearCenter
		}
	}
}

// BuildWing converts the wing spec, resolving the air density if needed
func (c *Case) BuildWing() (*wing.Wing, error) {
	ws := c.Wing
	density := ws.Density
	if density == 0 {
		cond, err := atmos.Density(ws.Altitude, ws.Humidity, 0)
		if err != nil {
			return nil, err
		}
		density = cond.Density
	}
	w := wing.New(ws.Span, ws.RootChord, ws.TipChord, ws.LiftCoefficient, density, ws.Velocity)
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
