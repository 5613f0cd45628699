package wing

import (
	"fmt"
	"math"
)

// Wing represents one straight-tapered wing and the flight condition it is
// analyzed at. Lengths are in meters, density in kg/m³, velocity in m/s.
type Wing struct {
	// Geometry
	Span      float64 // b - full tip-to-tip span
	RootChord float64 // c_r
	TipChord  float64 // c_t

	// Flight condition
	LiftCoefficient float64 // CL
	Density         float64 // ρ
	Velocity        float64 // V
}

// New creates a wing from its geometry and flight condition
func New(span, rootChord, tipChord, cl, density, velocity float64) *Wing {
	return &Wing{
		Span:            span,
		RootChord:       rootChord,
		TipChord:        tipChord,
		LiftCoefficient: cl,
		Density:         density,
		Velocity:        velocity,
	}
}

// Validate checks that the wing can be discretized and loaded
func (w *Wing) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"span", w.Span},
		{"root chord", w.RootChord},
		{"tip chord", w.TipChord},
		{"lift coefficient", w.LiftCoefficient},
		{"air density", w.Density},
		{"velocity", w.Velocity},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s must be a finite number, got %v", f.name, f.value)}
		}
	}
	if w.Span <= 0 {
		return &ValidationError{msg: fmt.Sprintf("span must be positive, got %.4g", w.Span)}
	}
	if w.RootChord <= 0 {
		return &ValidationError{msg: fmt.Sprintf("root chord must be positive, got %.4g", w.RootChord)}
	}
	if w.TipChord < 0 {
		return &ValidationError{msg: fmt.Sprintf("tip chord must not be negative, got %.4g", w.TipChord)}
	}
	if w.LiftCoefficient == 0 {
		return &ValidationError{msg: "lift coefficient must not be zero"}
	}
	if w.Density <= 0 {
		return &ValidationError{msg: fmt.Sprintf("air density must be positive, got %.4g", w.Density)}
	}
	if w.Velocity <= 0 {
		return &ValidationError{msg: fmt.Sprintf("velocity must be positive, got %.4g", w.Velocity)}
	}
	return nil
}

// SemiSpan returns b/2, the root-to-tip length of one half wing
func (w *Wing) SemiSpan() float64 {
	return w.Span / 2
}

// Chord returns the local chord at spanwise position y (linear taper)
func (w *Wing) Chord(y float64) float64 {
	return w.RootChord + (w.TipChord-w.RootChord)*(y/w.SemiSpan())
}

// TaperRatio returns λ = c_t / c_r
func (w *Wing) TaperRatio() float64 {
	return w.TipChord / w.RootChord
}

// Area returns the planform area of both halves
func (w *Wing) Area() float64 {
	return (w.RootChord + w.TipChord) / 2 * w.Span
}

// AspectRatio returns b² / S
func (w *Wing) AspectRatio() float64 {
	return w.Span * w.Span / w.Area()
}

// MeanAerodynamicChord returns 2/3·c_r·(1+λ+λ²)/(1+λ)
func (w *Wing) MeanAerodynamicChord() float64 {
	l := w.TaperRatio()
	return 2.0 / 3.0 * w.RootChord * (1 + l + l*l) / (1 + l)
}

// MACStation returns the spanwise position of the mean aerodynamic chord
func (w *Wing) MACStation() float64 {
	l := w.TaperRatio()
	return w.Span / 6 * (1 + 2*l) / (1 + l)
}

// EllipticalChord returns the chord an elliptical planform of the same area
// would have at y: 4S/(πb)·sqrt(1-(2y/b)²)
func (w *Wing) EllipticalChord(y float64) float64 {
	r := y / w.SemiSpan()
	return 4 * w.Area() / (math.Pi * w.Span) * math.Sqrt(math.Max(0, 1-r*r))
}

// DynamicPressure returns q = ½ρV²
func (w *Wing) DynamicPressure() float64 {
	return 0.5 * w.Density * w.Velocity * w.Velocity
}

// Stations returns n evenly spaced positions from the root (0) to the tip
// (span/2). The last station is exactly span/2.
func (w *Wing) Stations(n int) ([]float64, error) {
	if n < 2 {
		return nil, &ValidationError{msg: fmt.Sprintf("at least 2 stations are required, got %d", n)}
	}
	b := w.SemiSpan()
	y := make([]float64, n)
	step := b / float64(n-1)
	for i := range y {
		y[i] = float64(i) * step
	}
	y[n-1] = b
	return y, nil
}

// ValidationError represents an invalid wing definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
