package aero

import (
	"fmt"

	"github.com/alexiusacademia/gowing/internal/wing"
)

// Airfoil holds a 2-D section and its flight condition
type Airfoil struct {
	Chord             float64
	LiftCoefficient   float64
	MomentCoefficient float64 // Cm about the aerodynamic center
	Density           float64
	Velocity          float64
}

// Forces returns lift per unit span q·CL·c and the moment about the
// aerodynamic center q·Cm·c²
func (a Airfoil) Forces() (lift, moment float64) {
	q := 0.5 * a.Density * a.Velocity * a.Velocity
	return q * a.LiftCoefficient * a.Chord, q * a.MomentCoefficient * a.Chord * a.Chord
}

// CenterOfPressure returns the center of pressure measured from the
// leading edge, in the chord's unit
func (a Airfoil) CenterOfPressure() (float64, error) {
	lift, moment := a.Forces()
	if lift == 0 {
		return 0, fmt.Errorf("center of pressure is undefined at zero lift")
	}
	return 0.25*a.Chord + moment/lift, nil
}

// MomentArms returns the lift arm (quarter chord) and the drag arm (mid
// chord) at each spanwise position, measured from the local leading edge
func MomentArms(w *wing.Wing, y []float64) (lift, drag []float64) {
	lift = make([]float64, len(y))
	drag = make([]float64, len(y))
	for i, yi := range y {
		c := w.Chord(yi)
		lift[i] = 0.25 * c
		drag[i] = 0.5 * c
	}
	return lift, drag
}
