package torsion

import (
	"fmt"

	"github.com/alexiusacademia/gowing/internal/integrate"
	"github.com/alexiusacademia/gowing/internal/loads"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// Chord fractions used when the offset is derived from the local chord
const (
	DefaultAerodynamicCenter = 0.25 // quarter chord
	DefaultShearCenter       = 0.35 // elastic axis
)

// Offset describes the distance between the aerodynamic center and the
// shear center. When Distance is non-zero it is used at every station;
// otherwise the offset is (ShearCenter - AerodynamicCenter)·c(y).
type Offset struct {
	Distance          float64 `yaml:"distance"`           // m
	AerodynamicCenter float64 `yaml:"aerodynamic_center"` // fraction of chord
	ShearCenter       float64 `yaml:"shear_center"`       // fraction of chord
}

// ChordOffset returns an offset derived from the default chord fractions
func ChordOffset() Offset {
	return Offset{AerodynamicCenter: DefaultAerodynamicCenter, ShearCenter: DefaultShearCenter}
}

// At returns the offset at a station with the given local chord
func (o Offset) At(chord float64) float64 {
	if o.Distance != 0 {
		return o.Distance
	}
	return (o.ShearCenter - o.AerodynamicCenter) * chord
}

func (o Offset) String() string {
	if o.Distance != 0 {
		return fmt.Sprintf("%.4g m", o.Distance)
	}
	return fmt.Sprintf("(%.2fc - %.2fc)", o.ShearCenter, o.AerodynamicCenter)
}

// StationTorque returns the torque per unit length produced by lift acting
// at the given offset from the shear center
func StationTorque(lift, offset float64) float64 {
	return lift * offset
}

// Result holds the torsional load of one half wing
type Result struct {
	Offset Offset

	Y          []float64 // m
	Torque     []float64 // per unit length (N·m/m)
	Cumulative []float64 // integrated from tip (N·m)

	Total float64 // ∫ torque dy (N·m)
}

// Compute fills the Torque field of every station in d and integrates the
// distribution with the trapezoidal rule
func Compute(w *wing.Wing, d *loads.Distribution, offset Offset) (*Result, error) {
	if offset.Distance == 0 && offset.ShearCenter == offset.AerodynamicCenter {
		return nil, fmt.Errorf("torsion offset is zero: give a distance or distinct chord fractions")
	}

	r := &Result{
		Offset: offset,
		Y:      d.Ys(),
		Torque: make([]float64, len(d.Stations)),
	}
	for i := range d.Stations {
		s := &d.Stations[i]
		s.Torque = StationTorque(s.Lift, offset.At(w.Chord(s.Y)))
		r.Torque[i] = s.Torque
	}

	total, err := integrate.Trapezoid(r.Y, r.Torque)
	if err != nil {
		return nil, err
	}
	r.Total = total

	r.Cumulative, err = integrate.CumulativeFromTip(r.Y, r.Torque)
	if err != nil {
		return nil, err
	}
	return r, nil
}
