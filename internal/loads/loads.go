package loads

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gowing/internal/wing"
)

// DefaultSafetyFactor is the uniform factor applied to load, shear and moment
const DefaultSafetyFactor = 1.3

// LiftModel selects how lift per unit span is distributed along the span
type LiftModel string

const (
	// Elliptical scales the elliptical distribution by the local chord
	Elliptical LiftModel = "elliptical"
	// Schrenk averages the planform and elliptical chord distributions
	Schrenk LiftModel = "schrenk"
)

// ParseLiftModel converts a user supplied model name
func ParseLiftModel(s string) (LiftModel, error) {
	switch LiftModel(strings.ToLower(strings.TrimSpace(s))) {
	case "", Elliptical:
		return Elliptical, nil
	case Schrenk:
		return Schrenk, nil
	}
	return "", fmt.Errorf("unknown lift model %q (use elliptical or schrenk)", s)
}

// Options controls a load computation
type Options struct {
	// SafetyFactor scales load, shear and moment. Values <= 0 mean 1.
	SafetyFactor float64
	Model        LiftModel
}

// DefaultOptions returns the elliptical model with the default safety factor
func DefaultOptions() Options {
	return Options{SafetyFactor: DefaultSafetyFactor, Model: Elliptical}
}

// Station is the derived record at one spanwise position
type Station struct {
	Y      float64 // spanwise position from root (m)
	Chord  float64 // local chord (m)
	Lift   float64 // lift per unit length (N/m)
	Load   float64 // lift × Δy (N)
	Shear  float64 // shear force (N)
	Moment float64 // bending moment (N·m)
	Torque float64 // torsional moment per unit length (N·m/m), filled by torsion
}

// Distribution holds the per-station records of one half wing, root first
type Distribution struct {
	Stations     []Station
	SafetyFactor float64
	Model        LiftModel

	// Summary
	TotalLift  float64 // both halves, unfactored (N)
	RootShear  float64 // factored (N)
	RootMoment float64 // factored (N·m)
	PeakLift   float64 // largest magnitude, signed (N/m)
}

// LiftAt returns the elliptical lift per unit span at position y:
//
//	L'(y) = 4·CL·ρ·V²·c(y) / (π·b) · sqrt(1 - (y/s)²)
//
// where b is the full span and s the semi-span.
func LiftAt(w *wing.Wing, y float64) float64 {
	r := y / w.SemiSpan()
	return 4 * w.LiftCoefficient * w.Density * w.Velocity * w.Velocity * w.Chord(y) /
		(math.Pi * w.Span) * math.Sqrt(math.Max(0, 1-r*r))
}

// SchrenkLiftAt returns q·CL·½(c(y) + c_ell(y))
func SchrenkLiftAt(w *wing.Wing, y float64) float64 {
	return w.DynamicPressure() * w.LiftCoefficient * 0.5 * (w.Chord(y) + w.EllipticalChord(y))
}

// Compute builds the load, shear and bending moment distribution over the
// stations y (root first, tip last). Shear and moment are accumulated from
// the tip, where both are zero.
func Compute(w *wing.Wing, y []float64, opts Options) (*Distribution, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	n := len(y)
	if n < 2 {
		return nil, fmt.Errorf("at least 2 stations are required, got %d", n)
	}
	for i := 1; i < n; i++ {
		if y[i] <= y[i-1] {
			return nil, fmt.Errorf("stations must be strictly increasing (y[%d]=%.4g, y[%d]=%.4g)", i-1, y[i-1], i, y[i])
		}
	}

	sf := opts.SafetyFactor
	if sf <= 0 {
		sf = 1
	}
	model := opts.Model
	if model == "" {
		model = Elliptical
	}
	liftFn := LiftAt
	if model == Schrenk {
		liftFn = SchrenkLiftAt
	}

	d := &Distribution{
		Stations:     make([]Station, n),
		SafetyFactor: sf,
		Model:        model,
	}

	// Lift and load
	var halfLift float64
	for i := range y {
		s := &d.Stations[i]
		s.Y = y[i]
		s.Chord = w.Chord(y[i])
		s.Lift = liftFn(w, y[i])
		if i == n-1 {
			// wingtip boundary condition
			s.Lift = 0
		}
		s.Load = s.Lift * spacing(y, i)
		halfLift += s.Load
		if math.Abs(s.Lift) > math.Abs(d.PeakLift) {
			d.PeakLift = s.Lift
		}
	}
	d.TotalLift = 2 * halfLift

	// Shear and moment, tip to root
	for i := n - 2; i >= 0; i-- {
		next := d.Stations[i+1]
		s := &d.Stations[i]
		s.Shear = next.Shear + s.Load
		s.Moment = next.Moment + next.Shear*(y[i+1]-y[i])
	}

	for i := range d.Stations {
		d.Stations[i].Load *= sf
		d.Stations[i].Shear *= sf
		d.Stations[i].Moment *= sf
	}
	d.RootShear = d.Stations[0].Shear
	d.RootMoment = d.Stations[0].Moment

	return d, nil
}

// spacing returns Δy at station i; the last station reuses the previous interval
func spacing(y []float64, i int) float64 {
	if i == len(y)-1 {
		return y[i] - y[i-1]
	}
	return y[i+1] - y[i]
}

// Ys returns the station positions
func (d *Distribution) Ys() []float64 {
	return d.column(func(s Station) float64 { return s.Y })
}

// Lifts returns the lift per unit length at each station
func (d *Distribution) Lifts() []float64 {
	return d.column(func(s Station) float64 { return s.Lift })
}

// Shears returns the factored shear at each station
func (d *Distribution) Shears() []float64 {
	return d.column(func(s Station) float64 { return s.Shear })
}

// Moments returns the factored bending moment at each station
func (d *Distribution) Moments() []float64 {
	return d.column(func(s Station) float64 { return s.Moment })
}

// Torques returns the torque per unit length at each station
func (d *Distribution) Torques() []float64 {
	return d.column(func(s Station) float64 { return s.Torque })
}

func (d *Distribution) column(f func(Station) float64) []float64 {
	out := make([]float64, len(d.Stations))
	for i, s := range d.Stations {
		out[i] = f(s)
	}
	return out
}
